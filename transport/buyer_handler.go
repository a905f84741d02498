package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	utilsContext "github.com/muhammadheryan/buyer-leads/utils/context"
	"github.com/muhammadheryan/buyer-leads/utils/errors"
	"github.com/muhammadheryan/buyer-leads/utils/sheet"
	validatorx "github.com/muhammadheryan/buyer-leads/utils/validator"
)

// ListBuyers handler
// @Summary List buyers
// @Description Filtered, paginated buyer list ordered by updatedAt desc
// @Tags Buyer
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name, email or phone"
// @Param city query string false "City"
// @Param propertyType query string false "Property type"
// @Param bhk query string false "BHK"
// @Param purpose query string false "Purpose"
// @Param timeline query string false "Timeline"
// @Param source query string false "Source"
// @Param status query string false "Status"
// @Param budgetMin query int false "Minimum budget"
// @Param budgetMax query int false "Maximum budget"
// @Param page query int false "Page number (default 1)"
// @Param perPage query int false "Page size (default 10)"
// @Success 200 {object} model.BuyerListResponse
// @Failure 400 {object} errorResponse
// @Router /buyers [get]
func (s *RestHandler) ListBuyers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := parseFilter(q)
	if err != nil {
		writeError(w, err)
		return
	}
	page, err := queryInt(q, "page")
	if err != nil {
		writeError(w, err)
		return
	}
	perPage, err := queryInt(q, "perPage")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BuyerApp.List(r.Context(), filter, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateBuyer handler
// @Summary Create buyer
// @Description Creates a buyer owned by the caller with status New unless given
// @Tags Buyer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BuyerRequest true "Buyer"
// @Success 201 {object} model.Buyer
// @Failure 400 {object} errorResponse
// @Router /buyers [post]
func (s *RestHandler) CreateBuyer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.BuyerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.Create(ctx, actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// GetBuyer handler
// @Summary Get buyer
// @Tags Buyer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Success 200 {object} model.Buyer
// @Failure 404 {object} errorResponse
// @Router /buyers/{id} [get]
func (s *RestHandler) GetBuyer(w http.ResponseWriter, r *http.Request) {
	res, err := s.BuyerApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateBuyer handler
// @Summary Update buyer
// @Description Full update. lastUpdated must match the stored updatedAt when given.
// @Tags Buyer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Param request body model.UpdateBuyerRequest true "Buyer"
// @Success 200 {object} model.Buyer
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /buyers/{id} [put]
func (s *RestHandler) UpdateBuyer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateBuyerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.Update(ctx, actor, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateBuyerStatus handler
// @Summary Change buyer status
// @Tags Buyer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Param request body model.UpdateStatusRequest true "Status"
// @Success 200 {object} model.Buyer
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /buyers/{id}/status [patch]
func (s *RestHandler) UpdateBuyerStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.UpdateStatus(ctx, actor, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteBuyer handler
// @Summary Delete buyer
// @Tags Buyer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Success 200 {object} successResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /buyers/{id} [delete]
func (s *RestHandler) DeleteBuyer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.BuyerApp.Delete(ctx, actor, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// BuyerHistory handler
// @Summary Buyer change history
// @Description Most recent audit entries, newest first
// @Tags Buyer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Success 200 {array} model.BuyerHistory
// @Failure 404 {object} errorResponse
// @Router /buyers/{id}/history [get]
func (s *RestHandler) BuyerHistory(w http.ResponseWriter, r *http.Request) {
	res, err := s.BuyerApp.History(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListTags handler
// @Summary Tag suggestions
// @Tags Buyer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.TagListResponse
// @Router /buyers/tags [get]
func (s *RestHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.BuyerApp.ListTags(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.TagListResponse{Tags: tags})
}

// ImportBuyers handler
// @Summary Import buyers
// @Description Multipart CSV or XLSX upload. Every row is validated first; one invalid row rejects the file.
// @Tags Buyer
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} model.ImportResult
// @Failure 400 {object} errorResponse
// @Router /buyers/import [post]
func (s *RestHandler) ImportBuyers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := utilsContext.GetActor(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.Config.Buyer.ImportMaxBytes)
	if err := r.ParseMultipartForm(s.Config.Buyer.ImportMaxBytes); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer file.Close()

	format, err := sheet.ParseFormat(header.Filename)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.Import(ctx, actor, file, format)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ExportBuyers handler
// @Summary Export buyers
// @Description Same filters as the list, newest first
// @Tags Buyer
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "csv (default) or xlsx"
// @Param city query string false "City"
// @Param status query string false "Status"
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Router /buyers/export [get]
func (s *RestHandler) ExportBuyers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := parseFilter(q)
	if err != nil {
		writeError(w, err)
		return
	}
	format := sheet.FormatCSV
	if v := q.Get("format"); v != "" {
		if format, err = sheet.ParseFormat(v); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
	}

	// buffered so a failed export still gets a JSON error
	var buf bytes.Buffer
	if err := s.BuyerApp.Export(r.Context(), filter, &buf, format); err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("buyer-leads-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func parseFilter(q url.Values) (*model.BuyerFilter, error) {
	filter := &model.BuyerFilter{
		Search:       strings.TrimSpace(q.Get("search")),
		City:         q.Get("city"),
		PropertyType: q.Get("propertyType"),
		BHK:          q.Get("bhk"),
		Purpose:      q.Get("purpose"),
		Timeline:     q.Get("timeline"),
		Source:       q.Get("source"),
		Status:       q.Get("status"),
	}
	for _, f := range []struct {
		name string
		dst  **int64
	}{
		{"budgetMin", &filter.BudgetMin},
		{"budgetMax", &filter.BudgetMax},
	} {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		*f.dst = &n
	}
	return filter, nil
}

func queryInt(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return n, nil
}
