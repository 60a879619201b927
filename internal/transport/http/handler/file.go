package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/StepanK17/novagen-service/internal/transport/http/dto"
	"github.com/StepanK17/novagen-service/internal/usecase"
)

// FileHandler обрабатывает запросы списка файлов
type FileHandler struct {
	fileUseCase *usecase.FileUseCase
	log         *zap.SugaredLogger
}

// NewFileHandler создает новый handler для файлов
func NewFileHandler(fileUseCase *usecase.FileUseCase, log *zap.SugaredLogger) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
		log:         log,
	}
}

// AddFile обрабатывает POST /file/add
func (h *FileHandler) AddFile(w http.ResponseWriter, r *http.Request) {
	var req dto.AddFileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.SessionID == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_INPUT")
		return
	}

	file, err := h.fileUseCase.AddFile(r.Context(), req.SessionID, req.Name)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.AddFileResponse{File: dto.ToFileDTO(file)})
}

// ListFiles обрабатывает GET /file/list
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromQuery(w, r)
	if !ok {
		return
	}

	files, err := h.fileUseCase.Files(r.Context(), sessionID)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.FilesResponse{
		SessionID: sessionID,
		Files:     dto.ToFileDTOs(files),
	})
}
