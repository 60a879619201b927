// Package catalog holds the static reference data of the workspace:
// the mentor roster, filler team names, questionnaire options and
// the defaults a fresh session starts with.
package catalog

import "github.com/StepanK17/novagen-service/internal/domain/entity"

// Mentors returns the mentor roster in declared order.
// Order matters: mentor assignment is first-match-wins.
func Mentors() []entity.Mentor {
	return []entity.Mentor{
		{
			Name:        "Ada Lovelace",
			Era:         "Early Computing",
			FocusTags:   []string{"algorithms", "mathematics"},
			Description: "Pioneer of computer programming, known for her work on Charles Babbage's Analytical Engine.",
		},
		{
			Name:        "Alan Turing",
			Era:         "WWII & AI Foundations",
			FocusTags:   []string{"AI", "cryptography", "logic"},
			Description: "Mathematician and computer scientist, considered the father of artificial intelligence and theoretical computer science.",
		},
		{
			Name:        "Grace Hopper",
			Era:         "Early Software",
			FocusTags:   []string{"programming languages", "compilers"},
			Description: "Admiral and computer scientist, pioneer in programming languages and the first to use the term 'bug'.",
		},
		{
			Name:        "Steve Jobs",
			Era:         "Personal Computing",
			FocusTags:   []string{"UX", "design", "innovation"},
			Description: "Co-founder of Apple, visionary in design and user experience, revolutionized the tech industry.",
		},
		{
			Name:        "Bill Gates",
			Era:         "Software Empires",
			FocusTags:   []string{"software development", "scalability"},
			Description: "Co-founder of Microsoft, a key figure in the software revolution and personal computing.",
		},
		{
			Name:        "Linus Torvalds",
			Era:         "Open Source",
			FocusTags:   []string{"operating systems", "kernel development"},
			Description: "Creator of the Linux kernel, an influential figure in open-source software development.",
		},
	}
}

// FillerNames returns the candidate pool used to complete a team.
func FillerNames() []string {
	return []string{"Alex Chen", "Priya Sharma", "Omar Rodriguez", "Sarah Kim"}
}

// DefaultTeamMembers is shown to visitors who have not submitted the form yet.
func DefaultTeamMembers() []entity.TeamMember {
	return []entity.TeamMember{
		{Name: "Andrea Garcia"},
		{Name: "Carlos Lopez"},
		{Name: "Sofia Martinez"},
		{Name: "Ricardo Sanchez"},
	}
}

// DefaultTeamTags drive the mentor of the default team.
func DefaultTeamTags() []string {
	return []string{"AI", "UX"}
}

// DefaultSharedFiles seeds the file list of every new session.
func DefaultSharedFiles() []string {
	return []string{
		"Project_Brief_Q3.pdf",
		"Design_System_V2.sketch",
		"AI_Research_Paper.docx",
		"Traffic_Sim_Prototype.zip",
	}
}

// TechTrends returns the options of the questionnaire.
func TechTrends() []string {
	return []string{
		"AI Tools (LLMs, ML Ops)",
		"New APIs (Web3, IoT)",
		"Design Systems and UI/UX",
		"Cloud-Native and Serverless",
		"Cybersecurity and Privacy",
		"Quantum Computing",
		"Sustainable Technology",
		"DevOps and Automation",
		"AR/VR and Metaverse",
	}
}

// Projects returns every project that may be offered for evaluation.
func Projects() []entity.EvaluationProject {
	return []entity.EvaluationProject{
		{ID: "proj_ai_1", Name: "AI-powered Customer Support Chatbot with LLM Integration", Trend: "AI Tools (LLMs, ML Ops)", Description: "Develop a chatbot capable of handling complex customer queries using large language models and machine learning operations."},
		{ID: "proj_ai_2", Name: "Automated ML Model Deployment Pipeline (MLOps)", Trend: "AI Tools (LLMs, ML Ops)", Description: "Implement a CI/CD pipeline specifically for machine learning models, ensuring seamless deployment and monitoring."},
		{ID: "proj_api_1", Name: "Decentralized Identity Management System (Web3)", Trend: "New APIs (Web3, IoT)", Description: "Create a secure identity system leveraging blockchain technology for enhanced privacy and user control."},
		{ID: "proj_api_2", Name: "Smart City IoT Sensor Data Platform", Trend: "New APIs (Web3, IoT)", Description: "Build a platform to collect, process, and visualize data from IoT sensors for urban planning and resource management."},
		{ID: "proj_design_1", Name: "Company-wide Design System Implementation", Trend: "Design Systems and UI/UX", Description: "Establish a comprehensive design system with reusable components and guidelines to ensure consistent UI/UX across all products."},
		{ID: "proj_design_2", Name: "User-Centric Mobile App Redesign", Trend: "Design Systems and UI/UX", Description: "Redesign an existing mobile application focusing on improving user experience and interface aesthetics based on modern UI/UX principles."},
		{ID: "proj_cloud_1", Name: "Migration to Serverless Architecture on GCP/AWS", Trend: "Cloud-Native and Serverless", Description: "Migrate existing monolithic applications to a serverless architecture, leveraging cloud functions and managed services for scalability and cost efficiency."},
		{ID: "proj_cloud_2", Name: "Kubernetes-based Microservices Deployment", Trend: "Cloud-Native and Serverless", Description: "Implement a container orchestration system using Kubernetes for deploying and managing microservices in a cloud-native environment."},
		{ID: "proj_cyber_1", Name: "Enhanced Cybersecurity Data Encryption Protocol", Trend: "Cybersecurity and Privacy", Description: "Develop and integrate a new, more robust data encryption protocol for sensitive customer information."},
		{ID: "proj_cyber_2", Name: "Real-time Threat Detection System", Trend: "Cybersecurity and Privacy", Description: "Build a system that uses AI and machine learning to detect and respond to cybersecurity threats in real-time."},
		{ID: "proj_quantum_1", Name: "Quantum-Resistant Cryptography Research Project", Trend: "Quantum Computing", Description: "Research and prototype cryptographic algorithms that are resistant to attacks from future quantum computers."},
		{ID: "proj_quantum_2", Name: "Quantum Machine Learning Algorithm Development", Trend: "Quantum Computing", Description: "Explore and develop machine learning algorithms designed to run on quantum computers for specific computational advantages."},
		{ID: "proj_sustain_1", Name: "Energy Consumption Optimization Software for Data Centers", Trend: "Sustainable Technology", Description: "Develop software to monitor and optimize energy usage in data centers, reducing environmental impact and operational costs."},
		{ID: "proj_sustain_2", Name: "Blockchain for Supply Chain Traceability (Sustainability Focus)", Trend: "Sustainable Technology", Description: "Implement a blockchain solution to enhance transparency and traceability in supply chains, verifying sustainable practices."},
		{ID: "proj_devops_1", Name: "Automated CI/CD Pipeline for Multi-Cloud Deployments", Trend: "DevOps and Automation", Description: "Design and implement an automated Continuous Integration/Continuous Delivery pipeline that supports deployments across multiple cloud providers."},
		{ID: "proj_devops_2", Name: "Infrastructure as Code (IaC) Adoption for Cloud Resources", Trend: "DevOps and Automation", Description: "Transition infrastructure management to Infrastructure as Code (IaC) using tools like Terraform or Ansible for consistent and repeatable deployments."},
		{ID: "proj_arvr_1", Name: "AR/VR Remote Collaboration Tool for Engineering Teams", Trend: "AR/VR and Metaverse", Description: "Develop an augmented/virtual reality application to facilitate remote collaboration for geographically dispersed engineering teams, enabling shared 3D model interaction."},
		{ID: "proj_arvr_2", Name: "Metaverse Platform for Virtual Product Showcases", Trend: "AR/VR and Metaverse", Description: "Build a virtual metaverse environment where customers can explore and interact with digital twins of products."},
	}
}
