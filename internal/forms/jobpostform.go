package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"
)

// FileAttachment is a local file picked for upload. The client only ever
// writes attachments; it never re-derives bytes from a stored URL.
type FileAttachment struct {
	FileName string
	Content  []byte
}

// JobPostForm collects every field of a job post submission, including the
// two ordered auxiliary lists. The same form backs both create and edit.
type JobPostForm struct {
	Title               string
	Description         string
	EmploymentType      string
	SalaryMin           int
	SalaryMax           int
	Location            string
	Address             string
	Category            string
	ApplicationDeadline *time.Time
	IsActive            bool

	Requirements     *ListEditor
	Responsibilities *ListEditor

	// Image, when set, forces a multipart submission under the "post_image"
	// field.
	Image *FileAttachment
}

// NewJobPostForm builds an empty form with fresh list editors.
func NewJobPostForm() *JobPostForm {
	return &JobPostForm{
		Requirements:     NewListEditor(nil),
		Responsibilities: NewListEditor(nil),
		IsActive:         true,
	}
}

type jobPostFields struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	EmploymentType      string     `json:"employment_type"`
	SalaryMin           int        `json:"salary_min"`
	SalaryMax           int        `json:"salary_max"`
	Location            string     `json:"location"`
	Address             string     `json:"address"`
	Category            string     `json:"category"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	IsActive            bool       `json:"is_active"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
}

func (f *JobPostForm) fields() jobPostFields {
	return jobPostFields{
		Title:               f.Title,
		Description:         f.Description,
		EmploymentType:      f.EmploymentType,
		SalaryMin:           f.SalaryMin,
		SalaryMax:           f.SalaryMax,
		Location:            f.Location,
		Address:             f.Address,
		Category:            f.Category,
		ApplicationDeadline: f.ApplicationDeadline,
		IsActive:            f.IsActive,
		Requirements:        f.Requirements.Items(),
		Responsibilities:    f.Responsibilities.Items(),
	}
}

// Encode serializes the form for submission. Without an attachment the body
// is plain JSON; with one it is multipart form data where the two list
// fields are carried as JSON text inside single fields (the one array
// convention used everywhere).
func (f *JobPostForm) Encode() (contentType string, body *bytes.Buffer, err error) {
	if f.Image == nil {
		raw, err := json.Marshal(f.fields())
		if err != nil {
			return "", nil, fmt.Errorf("failed to encode job post form: %w", err)
		}
		return "application/json", bytes.NewBuffer(raw), nil
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := f.fields()
	scalars := map[string]string{
		"title":           fields.Title,
		"description":     fields.Description,
		"employment_type": fields.EmploymentType,
		"salary_min":      strconv.Itoa(fields.SalaryMin),
		"salary_max":      strconv.Itoa(fields.SalaryMax),
		"location":        fields.Location,
		"address":         fields.Address,
		"category":        fields.Category,
		"is_active":       strconv.FormatBool(fields.IsActive),
	}
	if fields.ApplicationDeadline != nil {
		scalars["application_deadline"] = fields.ApplicationDeadline.Format(time.RFC3339)
	}
	for name, val := range scalars {
		if err := w.WriteField(name, val); err != nil {
			return "", nil, fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	for name, list := range map[string][]string{
		"requirements":     fields.Requirements,
		"responsibilities": fields.Responsibilities,
	} {
		raw, err := json.Marshal(list)
		if err != nil {
			return "", nil, fmt.Errorf("failed to encode %s: %w", name, err)
		}
		if err := w.WriteField(name, string(raw)); err != nil {
			return "", nil, fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	part, err := w.CreateFormFile("post_image", f.Image.FileName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(f.Image.Content); err != nil {
		return "", nil, fmt.Errorf("failed to write file part: %w", err)
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return w.FormDataContentType(), buf, nil
}

// FileForm builds a single-file multipart body, used for logo and resume
// uploads where the file is the only payload.
func FileForm(fieldName string, att FileAttachment) (contentType string, body *bytes.Buffer, err error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile(fieldName, att.FileName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(att.Content); err != nil {
		return "", nil, fmt.Errorf("failed to write file part: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return w.FormDataContentType(), buf, nil
}
