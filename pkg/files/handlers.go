package files

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"learnapp/pkg/common"
	"learnapp/pkg/logger"
	"learnapp/pkg/sessions"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock_test.go -package=files

const multipartMemory = 4 << 20

type IFileService interface {
	Upload(ctx context.Context, authorId int64, contentType string, size int64, r io.Reader) (*FileRef, error)
	Delete(ctx context.Context, actorId int64, url string) error
	Backgrounds(ctx context.Context) ([]string, error)
	Download(ctx context.Context, name string, w io.Writer) error
}

type FileHandler struct {
	Service IFileService
}

func NewFileHandler(s IFileService) *FileHandler {
	return &FileHandler{Service: s}
}

// Upload takes the multipart field "file".
func (fh *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize+multipartMemory)
	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Log(r.Context()).Infof("can't read uploaded file: %v", err)
		common.WriteMsg(w, "field 'file' is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ref, err := fh.Service.Upload(r.Context(), author.Id, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, ref, http.StatusCreated)
}

func (fh *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, common.Unauthorized("not authorized"))
		return
	}

	req := struct {
		URL string `json:"url"`
	}{}
	if err := common.ParseReqBody(r.Body, &req); err != nil {
		common.WriteMsg(w, "field 'url' is required", http.StatusBadRequest)
		return
	}

	if err := fh.Service.Delete(r.Context(), actor.Id, req.URL); err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List serves ?type=backgrounds, the only listing there is.
func (fh FileHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("type") != "backgrounds" {
		common.WriteMsg(w, "unsupported file type", http.StatusBadRequest)
		return
	}

	urls, err := fh.Service.Backgrounds(r.Context())
	if err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	common.WriteJSON(w, urls, http.StatusOK)
}

// Download streams a blob by name. Files are small, so the body is buffered
// to sniff the content type before the headers go out.
func (fh FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	buf := new(bytes.Buffer)
	if err := fh.Service.Download(r.Context(), name, buf); err != nil {
		common.WriteErr(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(buf.Bytes()))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Log(r.Context()).Errorf("can't write file %s: %v", name, err)
	}
}
