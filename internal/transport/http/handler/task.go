package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	"github.com/StepanK17/novagen-service/internal/transport/http/dto"
	"github.com/StepanK17/novagen-service/internal/usecase"
)

// TaskHandler обрабатывает запросы доски задач
type TaskHandler struct {
	taskUseCase *usecase.TaskUseCase
	log         *zap.SugaredLogger
}

// NewTaskHandler создает новый handler для задач
func NewTaskHandler(taskUseCase *usecase.TaskUseCase, log *zap.SugaredLogger) *TaskHandler {
	return &TaskHandler{
		taskUseCase: taskUseCase,
		log:         log,
	}
}

// AddTask обрабатывает POST /task/add
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.SessionID == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_INPUT")
		return
	}

	task, err := h.taskUseCase.AddTask(r.Context(), req.SessionID, req.Title, req.Description)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.TaskResponse{Task: dto.ToTaskDTO(task)})
}

// UpdateTaskStatus обрабатывает POST /task/updateStatus
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTaskStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.SessionID == "" || req.TaskID == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_INPUT")
		return
	}

	err := h.taskUseCase.UpdateTaskStatus(r.Context(), req.SessionID, req.TaskID, entity.TaskStatus(req.Status))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// EditTask обрабатывает POST /task/edit
func (h *TaskHandler) EditTask(w http.ResponseWriter, r *http.Request) {
	var req dto.EditTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.SessionID == "" || req.TaskID == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_INPUT")
		return
	}

	err := h.taskUseCase.EditTask(r.Context(), req.SessionID, req.TaskID, req.Title, req.Description)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask обрабатывает POST /task/delete
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.SessionID == "" || req.TaskID == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_INPUT")
		return
	}

	if err := h.taskUseCase.DeleteTask(r.Context(), req.SessionID, req.TaskID); err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetBoard обрабатывает GET /task/board
func (h *TaskHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromQuery(w, r)
	if !ok {
		return
	}

	board, err := h.taskUseCase.Board(r.Context(), sessionID)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToBoardResponse(board))
}
