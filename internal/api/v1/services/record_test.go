package services_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "call-scripter/internal/api/errors"
	"call-scripter/internal/api/v1/services"
	"call-scripter/internal/app/metrics"
	"call-scripter/internal/app/storage"
	"call-scripter/internal/app/testutil"
)

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// multipartFile builds a FileHeader the way gin parses an upload
func multipartFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="record"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/upload_record", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	_, header, err := req.FormFile("record")
	require.NoError(t, err)
	return header
}

var recordNamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{8}\.mp3$`)

func TestRecordService_Upload(t *testing.T) {
	dir := t.TempDir()
	svc := services.NewRecordService(storage.NewLocalStore(dir, zap.NewNop()), metrics.New(), zap.NewNop(), 1<<20)

	resp, err := svc.Upload(context.Background(), multipartFile(t, "sales call.final.mp3", "audio/mpeg", testutil.SampleAudio))
	require.NoError(t, err)

	assert.Regexp(t, recordNamePattern, resp.FileName)
	assert.Equal(t, "audio/mpeg", resp.MimeType)

	stored, err := os.ReadFile(filepath.Join(dir, resp.FileName))
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleAudio, stored)
}

func TestRecordService_DistinctNames(t *testing.T) {
	svc := services.NewRecordService(storage.NewLocalStore(t.TempDir(), zap.NewNop()), metrics.New(), zap.NewNop(), 0)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		resp, err := svc.Upload(context.Background(), multipartFile(t, "call.mp3", "audio/mpeg", []byte("x")))
		require.NoError(t, err)
		assert.False(t, seen[resp.FileName], "duplicate name %s", resp.FileName)
		seen[resp.FileName] = true
	}
}

func TestRecordService_Errors(t *testing.T) {
	svc := services.NewRecordService(storage.NewLocalStore(t.TempDir(), zap.NewNop()), metrics.New(), zap.NewNop(), 4)

	_, err := svc.Upload(context.Background(), nil)
	apiErr, ok := apierrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindBadRequest, apiErr.Kind)
	assert.Equal(t, "Record file required", apiErr.Message)

	_, err = svc.Upload(context.Background(), multipartFile(t, "call.mp3", "audio/mpeg", []byte("too large")))
	apiErr, ok = apierrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindPayloadTooLarge, apiErr.Kind)
}
