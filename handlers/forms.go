package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"vrukshaAdmin/entities"
)

const maxUploadMemory = 32 << 20

// readUpload pulls a single optional file out of a parsed multipart form.
// A missing file is not an error; create handlers decide whether to require
// one.
func readUpload(r *http.Request, field string) (*entities.Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, nil
	}
	return &entities.Upload{FieldName: field, Filename: header.Filename, Content: content}, nil
}

// readUploads pulls every file submitted under a repeated field name.
func readUploads(r *http.Request, field string) ([]entities.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var uploads []entities.Upload
	for _, header := range r.MultipartForm.File[field] {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		if len(content) == 0 {
			continue
		}
		uploads = append(uploads, entities.Upload{FieldName: field, Filename: header.Filename, Content: content})
	}
	return uploads, nil
}

func parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Printf("parseMultipart: %v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return false
	}
	return true
}

// variationRows reassembles the repeated weight/price/pcs inputs into draft
// rows, preserving the submitted text verbatim.
func variationRows(r *http.Request) []entities.VariationRow {
	weights := r.PostForm["weight"]
	prices := r.PostForm["price"]
	pcs := r.PostForm["pcs"]
	n := len(weights)
	if len(prices) > n {
		n = len(prices)
	}
	if len(pcs) > n {
		n = len(pcs)
	}
	rows := make([]entities.VariationRow, 0, n)
	for i := 0; i < n; i++ {
		row := entities.VariationRow{}
		if i < len(weights) {
			row.Weight = weights[i]
		}
		if i < len(prices) {
			row.Price = prices[i]
		}
		if i < len(pcs) {
			row.Pcs = pcs[i]
		}
		rows = append(rows, row)
	}
	return rows
}
