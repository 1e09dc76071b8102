package forms

import (
	"encoding/json"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildForm() *JobPostForm {
	f := NewJobPostForm()
	f.Title = "Backend Engineer"
	f.Description = "Own the API."
	f.EmploymentType = "full_time"
	f.SalaryMin = 90000
	f.SalaryMax = 130000
	f.Location = "Berlin"
	f.Category = "engineering"
	_ = f.Requirements.Add("Go")
	_ = f.Requirements.Add("Go")
	_ = f.Requirements.Add("SQL")
	_ = f.Responsibilities.Add("Design endpoints")
	return f
}

func TestJobPostForm_EncodeJSON(t *testing.T) {
	f := buildForm()

	contentType, body, err := f.Encode()
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body.Bytes(), &decoded))
	assert.Equal(t, "Backend Engineer", decoded["title"])
	// order preserved, duplicates kept
	assert.Equal(t, []any{"Go", "Go", "SQL"}, decoded["requirements"])
	assert.Equal(t, []any{"Design endpoints"}, decoded["responsibilities"])
}

func TestJobPostForm_EncodeMultipartWithImage(t *testing.T) {
	f := buildForm()
	f.Image = &FileAttachment{FileName: "office.png", Content: []byte("png-bytes")}

	contentType, body, err := f.Encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(body, params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)

	// the list fields travel as JSON text inside single fields
	var reqs []string
	require.NoError(t, json.Unmarshal([]byte(form.Value["requirements"][0]), &reqs))
	assert.Equal(t, []string{"Go", "Go", "SQL"}, reqs)

	assert.Equal(t, "Backend Engineer", form.Value["title"][0])
	assert.Equal(t, "90000", form.Value["salary_min"][0])

	files := form.File["post_image"]
	require.Len(t, files, 1)
	assert.Equal(t, "office.png", files[0].Filename)
}

func TestFileForm(t *testing.T) {
	contentType, body, err := FileForm("resume", FileAttachment{
		FileName: "cv.pdf",
		Content:  []byte("pdf-bytes"),
	})
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)

	files := form.File["resume"]
	require.Len(t, files, 1)
	assert.Equal(t, "cv.pdf", files[0].Filename)
}
