package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoacuong/entities"
	"hoacuong/pkg/store"
)

type countingTransport struct {
	calls int32
	next  http.RoundTripper
}

func (t *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	atomic.AddInt32(&t.calls, 1)
	if t.next == nil {
		return nil, errors.New("no network in tests")
	}
	return t.next.RoundTrip(r)
}

func seedSnapshot() store.Snapshot { return store.NewSeeded().Snapshot() }

func TestMissingKeySkipsTransport(t *testing.T) {
	tr := &countingTransport{}
	g := NewGemini("", "", "", "vi", WithHTTPClient(&http.Client{Transport: tr}))

	got := g.GenerateInsights(context.Background(), "Tổng kết?", seedSnapshot())
	assert.Equal(t, "Vui lòng cấu hình API Key để sử dụng tính năng AI.", got)
	assert.Zero(t, atomic.LoadInt32(&tr.calls))
}

func TestTransportFailureReturnsFallback(t *testing.T) {
	tr := &countingTransport{}
	g := NewGemini("http://gemini.invalid", "k", "", "vi", WithHTTPClient(&http.Client{Transport: tr}))

	got := g.GenerateInsights(context.Background(), "q", seedSnapshot())
	assert.Equal(t, "Đã xảy ra lỗi khi kết nối với AI. Vui lòng thử lại sau.", got)
	assert.EqualValues(t, 1, atomic.LoadInt32(&tr.calls), "no retry")
}

func TestSuccessReturnsText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"**Sản lượng** "},{"text":"ổn định"}]}}]}`)
	}))
	defer srv.Close()

	g := NewGemini(srv.URL, "secret", "gemini-2.5-flash", "vi")
	got := g.GenerateInsights(context.Background(), "Xu hướng giá?", seedSnapshot())

	assert.Equal(t, "**Sản lượng** ổn định", got)
	assert.Equal(t, "/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, `Câu hỏi của người dùng: "Xu hướng giá?"`)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, `"totalVolume":2650`)
}

func TestErrorStatusReturnsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"quota"}}`)
	}))
	defer srv.Close()

	g := NewGemini(srv.URL, "k", "", "en")
	assert.Equal(t, "Could not reach the AI service. Please try again later.",
		g.GenerateInsights(context.Background(), "q", seedSnapshot()))
}

func TestMalformedAndEmptyResponses(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`not json`, "Đã xảy ra lỗi khi kết nối với AI. Vui lòng thử lại sau."},
		{`{"candidates":[]}`, "Đã xảy ra lỗi khi kết nối với AI. Vui lòng thử lại sau."},
		{`{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`, "Không thể tạo phân tích vào lúc này."},
	}
	for _, tc := range cases {
		body := tc.body
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		}))
		g := NewGemini(srv.URL, "k", "", "vi")
		assert.Equal(t, tc.want, g.GenerateInsights(context.Background(), "q", seedSnapshot()), tc.body)
		srv.Close()
	}
}

func TestBuildContextIsBounded(t *testing.T) {
	var snap store.Snapshot
	for i := 0; i < 20; i++ {
		id := fmt.Sprint(i)
		snap.Areas = append(snap.Areas, entities.GrowingArea{ID: id})
		snap.Farmers = append(snap.Farmers, entities.Farmer{ID: id})
		snap.Purchases = append(snap.Purchases, entities.NewPurchase(id, "f", "2023-10-20", 2, 1, entities.QualityType1, ""))
	}
	c := BuildContext(snap, "vi")

	assert.Equal(t, 20, c.Stats.TotalPurchases)
	assert.Equal(t, 40.0, c.Stats.TotalVolume)
	assert.Len(t, c.SampleData.Areas, 5)
	assert.Len(t, c.SampleData.Farmers, 5)
	assert.Len(t, c.SampleData.RecentPurchases, 10)
	assert.Equal(t, "0", c.SampleData.RecentPurchases[0].ID)
}

func TestBuildPromptEmptyStore(t *testing.T) {
	p, err := BuildPrompt("q", store.Snapshot{}, "vi")
	require.NoError(t, err)
	assert.True(t, strings.Contains(p, `"areas":[]`))
	assert.Contains(t, p, "Dữ liệu nông nghiệp của Hoa Cương")
}
