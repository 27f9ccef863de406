package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"call-scripter/internal/api/v1/dto"
	"call-scripter/internal/app/testutil"
)

func TestRun_Streams(t *testing.T) {
	svc := testutil.NewMockScriptService(t)
	svc.On("StreamScript", mock.Anything, &dto.ScriptV2Request{Transcript: testutil.SampleTranscript, Type: "settings"}).
		Return([]string{"Hello, ", "this is Sam."}, nil)

	var out bytes.Buffer
	err := Run(context.Background(), svc, &out, testutil.SampleTranscript, "settings", false)
	require.NoError(t, err)
	assert.Equal(t, "Hello, this is Sam.\n", out.String())
}

func TestRun_Summary(t *testing.T) {
	svc := testutil.NewMockScriptService(t)
	svc.On("Summary", mock.Anything, &dto.ScriptRequest{Transcript: "t"}).Return("Objective: book a demo", nil)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), svc, &out, "t", "", true))
	assert.Equal(t, "Objective: book a demo\n", out.String())
	svc.AssertNotCalled(t, "StreamScript", mock.Anything, mock.Anything)
}

func TestRun_Error(t *testing.T) {
	svc := testutil.NewMockScriptService(t)
	svc.On("StreamScript", mock.Anything, mock.Anything).Return(nil, errors.New("upstream down"))

	err := Run(context.Background(), svc, &bytes.Buffer{}, "t", "", false)
	assert.EqualError(t, err, "upstream down")
}

func TestReadTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "call.txt")
	require.NoError(t, os.WriteFile(path, []byte("  agent: hi\n"), 0o600))

	got, err := readTranscript(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "agent: hi", got)

	got, err = readTranscript(strings.NewReader("from stdin"), "-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	_, err = readTranscript(strings.NewReader("   "), "-")
	assert.EqualError(t, err, "transcript is empty")

	_, err = readTranscript(nil, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to read transcript")
}
