package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
)

type partKind int

const (
	partField partKind = iota
	partJSON
	partFile
)

type part struct {
	kind     partKind
	name     string
	value    string
	payload  any
	filename string
	content  []byte
}

// Form describes a multipart body for the store api's upload endpoints.
// Parts are written in the order they were added: scalar fields as string
// parts, structured fields as one JSON-text part, files as binary parts.
type Form struct {
	parts []part
}

func (f *Form) AddField(name, value string) {
	f.parts = append(f.parts, part{kind: partField, name: name, value: value})
}

func (f *Form) AddJSONField(name string, payload any) {
	f.parts = append(f.parts, part{kind: partJSON, name: name, payload: payload})
}

func (f *Form) AddFile(name, filename string, content []byte) {
	f.parts = append(f.parts, part{kind: partFile, name: name, filename: filename, content: content})
}

func (f *Form) Encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, p := range f.parts {
		switch p.kind {
		case partField:
			if err := mw.WriteField(p.name, p.value); err != nil {
				return nil, "", fmt.Errorf("field %s: %w", p.name, err)
			}
		case partJSON:
			data, err := json.Marshal(p.payload)
			if err != nil {
				return nil, "", fmt.Errorf("field %s: %w", p.name, err)
			}
			if err := mw.WriteField(p.name, string(data)); err != nil {
				return nil, "", fmt.Errorf("field %s: %w", p.name, err)
			}
		case partFile:
			fw, err := mw.CreateFormFile(p.name, p.filename)
			if err != nil {
				return nil, "", fmt.Errorf("file %s: %w", p.name, err)
			}
			if _, err := fw.Write(p.content); err != nil {
				return nil, "", fmt.Errorf("file %s: %w", p.name, err)
			}
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return body, mw.FormDataContentType(), nil
}
