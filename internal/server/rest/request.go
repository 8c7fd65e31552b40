package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// pathID reads the {id} route parameter; it must be a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id", common.ErrorValidation)
	}
	return id, nil
}

// decodeBody reads a single JSON object into dst. Unknown fields are
// ignored; a wrong field type is a validation error.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body", common.ErrorValidation)
	}
	return nil
}

// parsePage reads offset, limit, sort_field and sort_order, falling back to
// models.DefaultPage for anything absent. Range checks are left to
// models.Page.Validate.
func parsePage(q url.Values) (models.Page, error) {
	page := models.DefaultPage()

	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return page, fmt.Errorf("%w: offset must be an integer", common.ErrorValidation)
		}
		page.Offset = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return page, fmt.Errorf("%w: limit must be an integer", common.ErrorValidation)
		}
		page.Limit = n
	}
	if v := q.Get("sort_field"); v != "" {
		page.SortField = v
	}
	if v := q.Get("sort_order"); v != "" {
		page.SortOrder = strings.ToLower(v)
	}
	return page, nil
}
