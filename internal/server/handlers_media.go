package server

import (
	"io"
	"net/http"

	"innkeep/internal/api"
)

const (
	uploadMaxBody         = 20 << 20 // 20 MiB
	uploadMultipartMemory = 8 << 20  // 8 MiB
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, uploadMaxBody)
	if err := r.ParseMultipartForm(uploadMultipartMemory); err != nil {
		s.writeErrorReq(w, r, classifyMultipartError(err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.writeErrorReq(w, r, validationError("No file uploaded"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.writeErrorReq(w, r, validationError("Error reading upload"))
		return
	}

	img, err := s.media.Upload(r.Context(), UploadInput{
		Content:     content,
		Filename:    header.Filename,
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, api.UploadResponse{Message: "Image uploaded successfully", ID: img.ID})
}

func (s *Server) handleListImages(w http.ResponseWriter, r *http.Request) {
	images, err := s.media.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, images)
}

func (s *Server) handleDeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathIDOrBadRequest(w, r)
	if !ok {
		return
	}

	if err := s.media.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Image deleted successfully"})
}
