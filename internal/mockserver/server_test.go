package mockserver

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/image-predictor/internal/model"
	"github.com/ytget/image-predictor/internal/predict"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func postImage(t *testing.T, url, field string, data []byte) *http.Response {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "upload.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(url+predict.PredictPath, writer.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestPing(t *testing.T) {
	ts := httptest.NewServer(New(nil).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + predict.PingPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, PingMessage, readBody(t, resp))
}

func TestPredictReturnsTopK(t *testing.T) {
	ts := httptest.NewServer(New(nil).Router())
	defer ts.Close()

	resp := postImage(t, ts.URL, predict.FormFieldImage, pngBytes(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	result, err := predict.Interpret(&predict.RawResponse{
		StatusCode: resp.StatusCode,
		Body:       readBody(t, resp),
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, DefaultTopK)
}

func TestPredictRejections(t *testing.T) {
	ts := httptest.NewServer(New(nil).Router())
	defer ts.Close()

	tests := []struct {
		name   string
		field  string
		data   []byte
		status int
		body   string
	}{
		{"empty file", predict.FormFieldImage, nil, http.StatusBadRequest, MsgEmptyImage},
		{"wrong field", "file", []byte("x"), http.StatusBadRequest, MsgMissingImage},
		{"not an image", predict.FormFieldImage, []byte("plain text"), http.StatusInternalServerError, MsgImageFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postImage(t, ts.URL, tt.field, tt.data)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.body, strings.TrimSpace(readBody(t, resp)))
		})
	}
}

func TestMetricsExposed(t *testing.T) {
	ts := httptest.NewServer(New(nil).Router())
	defer ts.Close()

	readBody(t, postImage(t, ts.URL, predict.FormFieldImage, pngBytes(t)))
	readBody(t, postImage(t, ts.URL, predict.FormFieldImage, nil))

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, `image_predictor_predictions_total{outcome="ok"} 1`)
	assert.Contains(t, body, `image_predictor_predictions_total{outcome="bad_request"} 1`)
	assert.Contains(t, body, "image_predictor_prediction_duration_seconds")
}

func TestClientAgainstServer(t *testing.T) {
	ts := httptest.NewServer(New(NewClassifier([]string{"cat", "dog", "bird"}, 3)).Router())
	defer ts.Close()

	client := predict.NewClient(ts.URL+"/", 0)
	ctx := context.Background()

	status, err := client.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, PingMessage, status)

	file := &model.SelectedFile{Name: "dot.png", ContentType: "image/png", Data: pngBytes(t)}
	result, err := client.Predict(ctx, file)
	require.NoError(t, err)
	require.Len(t, result.Items, 3)

	best := result.Best()
	assert.Equal(t, result.Items[0], best)
	assert.Contains(t, []string{"cat", "dog", "bird"}, best.ClassName)
}
