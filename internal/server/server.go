package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"thinknest/internal/domain"
	"thinknest/internal/engine"
	"thinknest/internal/kb"
)

// Server exposes the QA engine over HTTP for the chat client:
// POST /api/ask answers a question against the loaded knowledge base,
// /api/kb manages the knowledge base itself.
type Server struct {
	engine      *engine.Engine
	store       *kb.Store
	defaultMode domain.AnswerMode
}

func New(eng *engine.Engine, store *kb.Store, defaultMode domain.AnswerMode) *Server {
	return &Server{engine: eng, store: store, defaultMode: defaultMode}
}

// Handler returns the HTTP handler for all API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ask", s.handleAsk)
	mux.HandleFunc("/api/kb", s.handleKnowledgeBase)
	return logRequests(mux)
}

type askRequest struct {
	Question   string `json:"question"`
	AnswerMode string `json:"answerMode"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type uploadRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type kbResponse struct {
	Filename   string    `json:"filename"`
	UploadDate time.Time `json:"uploadDate"`
	Chunks     int       `json:"chunks"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "No question provided")
		return
	}
	snapshot := s.store.Get()
	if snapshot == nil {
		writeError(w, http.StatusInternalServerError, "Knowledge base not loaded")
		return
	}
	mode := s.defaultMode
	if req.AnswerMode != "" {
		mode = domain.ParseAnswerMode(req.AnswerMode)
	}
	ans := s.engine.Answer(req.Question, snapshot.Chunks, mode)
	writeJSON(w, http.StatusOK, askResponse{Answer: strings.TrimSpace(ans)})
}

func (s *Server) handleKnowledgeBase(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.uploadKnowledgeBase(w, r)
	case http.MethodGet:
		s.getKnowledgeBase(w)
	case http.MethodDelete:
		s.removeKnowledgeBase(w)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) uploadKnowledgeBase(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "No document content provided")
		return
	}
	filename := req.Filename
	if filename == "" {
		filename = "document.txt"
	}
	snapshot := &domain.KnowledgeBase{
		Filename:   filename,
		Content:    req.Content,
		UploadDate: time.Now(),
		Chunks:     s.engine.Chunk(req.Content),
	}
	if err := s.store.Set(snapshot); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist knowledge base")
		return
	}
	writeJSON(w, http.StatusOK, kbResponse{
		Filename:   snapshot.Filename,
		UploadDate: snapshot.UploadDate,
		Chunks:     len(snapshot.Chunks),
	})
}

func (s *Server) getKnowledgeBase(w http.ResponseWriter) {
	snapshot := s.store.Get()
	if snapshot == nil {
		writeError(w, http.StatusNotFound, "No knowledge base loaded")
		return
	}
	writeJSON(w, http.StatusOK, kbResponse{
		Filename:   snapshot.Filename,
		UploadDate: snapshot.UploadDate,
		Chunks:     len(snapshot.Chunks),
	})
}

func (s *Server) removeKnowledgeBase(w http.ResponseWriter) {
	if err := s.store.Remove(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to remove knowledge base")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
