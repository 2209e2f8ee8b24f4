package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"expenses/internal/core"
	"expenses/internal/storage"
)

type indexView struct {
	Expenses   []core.Expense
	Categories []string
	Today      string
	Total      float64
	Notices    []Notice

	// Echoed filter state for re-populating the form.
	StartStr         string
	EndStr           string
	SelectedCategory string

	// Chart datasets, serialized as JSON arrays for the canvas data
	// attributes.
	CatLabels string
	CatValues string
	DayLabels string
	DayValues string
}

type editView struct {
	Expense    core.Expense
	Categories []string
	Today      string
	Notices    []Notice
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	startStr := strings.TrimSpace(q.Get("start"))
	endStr := strings.TrimSpace(q.Get("end"))
	category := strings.TrimSpace(q.Get("category"))

	notices := s.flash.pop(w, r)

	// On this read-only path an unparseable date is simply an absent bound.
	var f storage.Filter
	if startStr != "" {
		if d, err := core.ParseDate(startStr); err == nil {
			f.Start = d
		}
	}
	if endStr != "" {
		if d, err := core.ParseDate(endStr); err == nil {
			f.End = d
		}
	}
	f.Category = category

	if !f.Start.IsZero() && !f.End.IsZero() && f.End.Before(f.Start) {
		notices = append(notices, Notice{Kind: noticeError, Message: "End date cannot be earlier than start date."})
		f.Start, f.End = core.Date{}, core.Date{}
		startStr, endStr = "", ""
	}

	expenses, err := s.store.List(ctx, f)
	if err != nil {
		slog.ErrorContext(ctx, "List expenses error", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	catTotals, err := s.store.CategoryTotals(ctx, f)
	if err != nil {
		slog.ErrorContext(ctx, "Category totals error", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	dayTotals, err := s.store.CategoryTotalsByRecency(ctx, f)
	if err != nil {
		slog.ErrorContext(ctx, "Category totals by recency error", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	catLabels, catValues := chartData(catTotals)
	dayLabels, dayValues := chartData(dayTotals)

	s.render(w, r, "index.html", indexView{
		Expenses:         expenses,
		Categories:       core.Categories,
		Today:            core.Today().String(),
		Total:            core.Round2(total),
		Notices:          notices,
		StartStr:         startStr,
		EndStr:           endStr,
		SelectedCategory: category,
		CatLabels:        jsonArray(catLabels),
		CatValues:        jsonArray(catValues),
		DayLabels:        jsonArray(dayLabels),
		DayValues:        jsonArray(dayValues),
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(ctx, "Parse form error", "error", err, "url", r.URL.Path)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	e, err := core.ParseExpenseForm(
		r.PostFormValue("description"),
		r.PostFormValue("amount"),
		r.PostFormValue("category"),
		r.PostFormValue("date"),
	)
	if err != nil {
		s.flash.set(w, Notice{Kind: noticeError, Message: validationMessage(err)})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := s.store.Insert(ctx, e); err != nil {
		slog.ErrorContext(ctx, "Insert expense error", "error", err, "description", e.Description)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	s.flash.set(w, Notice{Kind: noticeSuccess, Message: "Expense added successfully!"})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		slog.ErrorContext(ctx, "Delete expense error", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	s.flash.set(w, Notice{Kind: noticeSuccess, Message: "Expense deleted successfully!"})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	e, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		slog.ErrorContext(ctx, "Get expense error", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, "edit.html", editView{
		Expense:    e,
		Categories: core.Categories,
		Today:      core.Today().String(),
		Notices:    s.flash.pop(w, r),
	})
}

func (s *Server) handleEditSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		slog.ErrorContext(ctx, "Get expense error", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(ctx, "Parse form error", "error", err, "url", r.URL.Path)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	e, err := core.ParseExpenseForm(
		r.PostFormValue("description"),
		r.PostFormValue("amount"),
		r.PostFormValue("category"),
		r.PostFormValue("date"),
	)
	if err != nil {
		// Unlike create, a failed edit returns to the form for the same id
		// so the in-progress edit context is preserved.
		s.flash.set(w, Notice{Kind: noticeError, Message: validationMessage(err)})
		http.Redirect(w, r, "/edit/"+r.PathValue("id"), http.StatusSeeOther)
		return
	}

	e.ID = existing.ID
	if err := s.store.Update(ctx, e); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		slog.ErrorContext(ctx, "Update expense error", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	s.flash.set(w, Notice{Kind: noticeSuccess, Message: "Expense updated successfully!"})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func chartData(totals []core.CategoryTotal) ([]string, []float64) {
	labels := make([]string, 0, len(totals))
	values := make([]float64, 0, len(totals))
	for _, ct := range totals {
		labels = append(labels, ct.Category)
		values = append(values, core.Round2(ct.Total))
	}
	return labels, values
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrFieldsRequired):
		return "All fields are required!"
	case errors.Is(err, core.ErrInvalidAmount):
		return "Invalid amount. Please enter a positive number."
	default:
		return err.Error()
	}
}
