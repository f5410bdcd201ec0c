package emulator

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/MKhiriev/studytrack/models"
)

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if !validDocumentPath(path) {
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidArgument, errInvalidPath.Error())
		return
	}

	doc, ok := h.documents.get(path)
	if !ok {
		utils.WriteError(w, http.StatusNotFound, app.CodeNotFound, "document not found")
		return
	}
	h.writeDocument(w, r, doc, http.StatusOK)
}

func (h *Handler) setDocument(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentWrite
	if !h.decodeBody(w, r, &req) {
		return
	}

	doc, err := h.documents.set(chi.URLParam(r, "*"), req.Fields)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidArgument, err.Error())
		return
	}
	h.writeDocument(w, r, doc, http.StatusOK)
}

func (h *Handler) mergeDocument(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentWrite
	if !h.decodeBody(w, r, &req) {
		return
	}

	doc, err := h.documents.merge(chi.URLParam(r, "*"), req.Fields, req.UpdateMask)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidArgument, err.Error())
		return
	}
	h.writeDocument(w, r, doc, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.documents.delete(chi.URLParam(r, "*")); err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidArgument, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCollection(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidArgument, err.Error())
		return
	}

	docs, err := h.documents.list(chi.URLParam(r, "*"), q)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidArgument, err.Error())
		return
	}

	list := models.DocumentList{Documents: make([]models.Document, 0, len(docs))}
	for _, d := range docs {
		wire, err := toWire(d)
		if err != nil {
			h.writeEncodingError(w, r, err)
			return
		}
		list.Documents = append(list.Documents, wire)
	}
	_, _ = utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) addDocument(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentWrite
	if !h.decodeBody(w, r, &req) {
		return
	}

	doc, err := h.documents.add(chi.URLParam(r, "*"), req.Fields)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.CodeInvalidArgument, err.Error())
		return
	}
	h.writeDocument(w, r, doc, http.StatusCreated)
}

func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if err := h.documents.apply(req.Writes); err != nil {
		caller, _ := utils.CallerID(r.Context())
		logger.FromRequest(r).Err(err).Str("func", "Handler.batch").Str("caller", caller).Msg("batch rejected")
		code := app.CodeInvalidArgument
		if errors.Is(err, errTooManyWrites) {
			code = app.CodeResourceExhausted
		}
		utils.WriteError(w, http.StatusBadRequest, code, err.Error())
		return
	}
	_, _ = utils.WriteJSON(w, map[string]int{"applied": len(req.Writes)}, http.StatusOK)
}

func (h *Handler) writeDocument(w http.ResponseWriter, r *http.Request, doc document, status int) {
	wire, err := toWire(doc)
	if err != nil {
		h.writeEncodingError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, wire, status)
}

func (h *Handler) writeEncodingError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("error encoding document")
	utils.WriteError(w, http.StatusInternalServerError, app.CodeInternal, "error encoding document")
}

func toWire(d document) (models.Document, error) {
	fields := make(map[string]json.RawMessage, len(d.fields))
	for name, v := range d.fields {
		raw, err := json.Marshal(v)
		if err != nil {
			return models.Document{}, err
		}
		fields[name] = raw
	}
	return models.Document{ID: d.id, Path: d.path, Fields: fields}, nil
}

// parseQuery reads orderBy, direction, limit and where=field==value.
func parseQuery(r *http.Request) (query, error) {
	values := r.URL.Query()
	q := query{orderBy: values.Get("orderBy")}

	switch values.Get("direction") {
	case "", "asc":
	case "desc":
		q.descending = true
	default:
		return query{}, errors.New("direction must be asc or desc")
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return query{}, errors.New("limit must be a non-negative integer")
		}
		q.limit = limit
	}

	if raw := values.Get("where"); raw != "" {
		field, value, ok := strings.Cut(raw, "==")
		if !ok || field == "" {
			return query{}, errors.New("where must have the form field==value")
		}
		q.whereField, q.whereValue = field, value
	}
	return q, nil
}
