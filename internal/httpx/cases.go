package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"casefeed/internal/ingest"
	mdb "casefeed/internal/mongo"
)

type HTTPError struct {
	Error string `json:"error"`
}

type CasesResponse struct {
	Items []mdb.CaseDoc `json:"items"`
	Meta  PageMeta      `json:"meta"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// CasesList godoc
// @Summary     List simulator cases
// @Tags        cases
// @Param       q          query   string  false  "title/description substring"
// @Param       specialty  query   string  false  "specialty (e.g. cardiology)"
// @Param       page       query   int     false  "page"  default(1)
// @Param       limit      query   int     false  "limit" default(20) minimum(1) maximum(100)
// @Success     200  {object}  CasesResponse
// @Failure     500  {object}  HTTPError
// @Router      /casesList [get]
func casesList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	specialty := strings.TrimSpace(r.URL.Query().Get("specialty"))

	filter := bson.M{}
	if q != "" {
		safe := regexp.QuoteMeta(q)
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": safe, "$options": "i"}},
			{"description": bson.M{"$regex": safe, "$options": "i"}},
		}
	}
	if specialty != "" {
		filter["specialty"] = bson.M{"$regex": "^" + regexp.QuoteMeta(specialty) + "$", "$options": "i"}
	}

	page := getPage(r)
	limit := getLimit(r, 20, 100)

	items, total, err := depMC.ListCases(ctx, filter, page, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, HTTPError{Error: err.Error()})
		return
	}
	for i, it := range items {
		items[i] = sanitizeCase(it)
	}
	if items == nil {
		items = []mdb.CaseDoc{}
	}

	writeJSON(w, http.StatusOK, CasesResponse{
		Items: items,
		Meta:  PageMeta{Page: page, Limit: int(limit), Total: total},
	})
}

// CaseByID godoc
// @Summary     Fetch one case by id
// @Tags        cases
// @Param       id   query   string  true  "hex ObjectID"
// @Success     200  {object}  map[string]interface{}
// @Failure     400  {object}  HTTPError
// @Failure     404  {object}  HTTPError
// @Router      /case [get]
func caseByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeJSON(w, http.StatusBadRequest, HTTPError{Error: "missing id"})
		return
	}

	doc, err := depMC.FindCaseByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeJSON(w, http.StatusNotFound, HTTPError{Error: "case not found"})
			return
		}
		writeJSON(w, http.StatusBadRequest, HTTPError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sanitizeCase(doc))
}

// IngestRun godoc
// @Summary     Re-run the cases file import
// @Tags        admin
// @Param       X-API-Key  header  string  true  "ingest API key"
// @Success     200  {object}  map[string]interface{}
// @Failure     401  {object}  HTTPError
// @Failure     500  {object}  HTTPError
// @Router      /ingest/run [post]
func ingestRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, HTTPError{Error: "POST only"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if err := ingest.RunImport(ctx, depCfg, depMC); err != nil {
		writeJSON(w, http.StatusInternalServerError, HTTPError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
