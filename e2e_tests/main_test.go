//go:build e2e

package e2e_tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBaseURL = "http://app:8080"

var baseURL = defaultBaseURL

// Client представляет HTTP клиент для тестов
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает новый тестовый клиент
func NewClient() *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}

// decodeBody читает JSON ответ в map
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// errorCode достает код ошибки из ответа
func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()

	errDetail := decodeBody(t, resp)["error"].(map[string]interface{})
	return errDetail["code"].(string)
}

// waitForService ждет, пока сервис станет доступным
func waitForService(t *testing.T) {
	client := NewClient()
	maxAttempts := 30
	for i := 0; i < maxAttempts; i++ {
		resp, err := client.httpClient.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatal("Service did not become available in time")
}

// createSession создает сессию и возвращает ее идентификатор
func createSession(t *testing.T, client *Client) string {
	t.Helper()

	resp, err := client.doRequest("POST", "/session/create", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	session := decodeBody(t, resp)["session"].(map[string]interface{})
	return session["session_id"].(string)
}

// onboard отправляет анкету для сессии
func onboard(t *testing.T, client *Client, sessionID string) map[string]interface{} {
	t.Helper()

	resp, err := client.doRequest("POST", "/session/onboard", map[string]interface{}{
		"session_id":  sessionID,
		"name":        "Elena",
		"company":     "NovaGen",
		"role":        "Architect",
		"age_group":   "40-55",
		"tech_trends": []string{"Quantum Computing"},
		"evaluated_projects": []map[string]interface{}{
			{"project_id": "proj_quantum_1", "feasibility": "High", "viability": "Medium", "challenge": "Low"},
		},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return decodeBody(t, resp)["session"].(map[string]interface{})
}

// TestMain выполняется перед всеми тестами
func TestMain(m *testing.M) {
	if v := os.Getenv("E2E_BASE_URL"); v != "" {
		baseURL = v
	}
	// Ждем, пока сервис станет доступным
	time.Sleep(3 * time.Second)
	os.Exit(m.Run())
}

// TestHealthCheck проверяет health endpoint
func TestHealthCheck(t *testing.T) {
	waitForService(t)

	client := NewClient()
	resp, err := client.httpClient.Get(baseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]string
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	assert.Equal(t, "ok", result["status"])
}

// TestOnboardingFlow проверяет анкету и назначение команды
func TestOnboardingFlow(t *testing.T) {
	waitForService(t)
	client := NewClient()

	sessionID := createSession(t, client)

	// До анкеты показывается команда по умолчанию
	resp, err := client.httpClient.Get(baseURL + "/team/get?session_id=" + sessionID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	team := decodeBody(t, resp)["team"].(map[string]interface{})
	assert.Equal(t, "default-team", team["team_id"])

	session := onboard(t, client, sessionID)
	assert.Equal(t, true, session["onboarded"])

	assignedTeam := session["team"].(map[string]interface{})
	assert.Len(t, assignedTeam["members"], 5)

	user := session["user"].(map[string]interface{})
	assert.Len(t, user["evaluated_projects"], 1)

	// Повторная анкета отклоняется
	resp2, err := client.doRequest("POST", "/session/onboard", map[string]interface{}{
		"session_id":  sessionID,
		"name":        "Elena",
		"company":     "NovaGen",
		"role":        "Architect",
		"age_group":   "40-55",
		"tech_trends": []string{"Quantum Computing"},
	})
	require.NoError(t, err)
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusConflict, resp2.StatusCode)
	assert.Equal(t, "ALREADY_ONBOARDED", errorCode(t, resp2))
}

// TestTaskBoardFlow проверяет полный flow работы с задачами
func TestTaskBoardFlow(t *testing.T) {
	waitForService(t)
	client := NewClient()

	sessionID := createSession(t, client)
	onboard(t, client, sessionID)

	resp, err := client.doRequest("POST", "/task/add", map[string]interface{}{
		"session_id":  sessionID,
		"title":       "Prototype qubit simulator",
		"description": "first pass",
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	task := decodeBody(t, resp)["task"].(map[string]interface{})
	taskID := task["task_id"].(string)
	assert.Equal(t, "todo", task["status"])
	assert.Equal(t, "Elena", task["assigned_to"])

	resp2, err := client.doRequest("POST", "/task/updateStatus", map[string]interface{}{
		"session_id": sessionID,
		"task_id":    taskID,
		"status":     "done",
	})
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)

	resp3, err := client.httpClient.Get(baseURL + "/task/board?session_id=" + sessionID)
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)

	board := decodeBody(t, resp3)
	assert.Len(t, board["todo"], 0)
	assert.Len(t, board["done"], 1)

	// Неизвестный статус
	resp4, err := client.doRequest("POST", "/task/updateStatus", map[string]interface{}{
		"session_id": sessionID,
		"task_id":    taskID,
		"status":     "blocked",
	})
	require.NoError(t, err)
	defer resp4.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp4.StatusCode)
	assert.Equal(t, "INVALID_STATUS", errorCode(t, resp4))
}

// TestChatFlow проверяет журнал чата
func TestChatFlow(t *testing.T) {
	waitForService(t)
	client := NewClient()

	sessionID := createSession(t, client)

	// Без анкеты писать в чат нельзя
	resp, err := client.doRequest("POST", "/chat/post", map[string]interface{}{
		"session_id": sessionID,
		"text":       "hi",
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "NO_SESSION", errorCode(t, resp))

	onboard(t, client, sessionID)

	resp2, err := client.doRequest("POST", "/chat/post", map[string]interface{}{
		"session_id": sessionID,
		"text":       "hi team",
	})
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusCreated, resp2.StatusCode)

	resp3, err := client.httpClient.Get(baseURL + "/chat/list?session_id=" + sessionID)
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)

	messages := decodeBody(t, resp3)["messages"].([]interface{})
	require.Len(t, messages, 1)
	assert.Equal(t, "hi team", messages[0].(map[string]interface{})["text"])
}

// TestNotificationLanguage проверяет локализацию уведомлений
func TestNotificationLanguage(t *testing.T) {
	waitForService(t)
	client := NewClient()

	sessionID := createSession(t, client)

	resp, err := client.doRequest("POST", "/file/add", map[string]interface{}{
		"session_id": sessionID,
		"name":       "roadmap.pdf",
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp2, err := client.httpClient.Get(baseURL + "/notification/get?lang=es&session_id=" + sessionID)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, "es", resp2.Header.Get("Content-Language"))

	notification := decodeBody(t, resp2)["notification"].(map[string]interface{})
	assert.Equal(t, "success", notification["type"])
	assert.NotEmpty(t, notification["message"])
}

// TestErrorCases проверяет обработку ошибок
func TestErrorCases(t *testing.T) {
	waitForService(t)
	client := NewClient()

	t.Run("unknown session", func(t *testing.T) {
		resp, err := client.httpClient.Get(baseURL + "/session/get?session_id=nonexistent")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
	})

	t.Run("empty file name", func(t *testing.T) {
		sessionID := createSession(t, client)

		resp, err := client.doRequest("POST", "/file/add", map[string]interface{}{
			"session_id": sessionID,
			"name":       "   ",
		})
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "EMPTY_FILE_NAME", errorCode(t, resp))
	})

	t.Run("missing fields", func(t *testing.T) {
		sessionID := createSession(t, client)

		resp, err := client.doRequest("POST", "/session/onboard", map[string]interface{}{
			"session_id": sessionID,
			"name":       "Elena",
		})
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_FIELDS", errorCode(t, resp))
	})
}

// TestStatistics проверяет endpoint статистики
func TestStatistics(t *testing.T) {
	waitForService(t)

	client := NewClient()
	resp, err := client.httpClient.Get(baseURL + "/statistics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decodeBody(t, resp)
	assert.Contains(t, stats, "total_sessions")
	assert.Contains(t, stats, "tasks_by_status")
	assert.Contains(t, stats, "teams_by_mentor")
}
