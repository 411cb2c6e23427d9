package handlers

import (
	"log"
	"net/http"

	"github.com/vedran77/skillswap/internal/service"
)

type DirectoryHandler struct {
	directoryService *service.DirectoryService
}

func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// Browse lists roster members matching the query filters. All three
// filters are optional; absent ones match everything.
func (h *DirectoryHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.Filter{
		Search:       q.Get("q"),
		Skill:        q.Get("skill"),
		Availability: q.Get("availability"),
	}

	result, err := h.directoryService.Browse(r.Context(), filter)
	if err != nil {
		log.Printf("ERROR browse directory: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
