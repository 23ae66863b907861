// pkg/ai/prompt.go

package ai

import (
	"fmt"

	"github.com/bytedance/sonic"

	"hoacuong/entities"
	"hoacuong/pkg/i18n"
	"hoacuong/pkg/report"
	"hoacuong/pkg/store"
)

const (
	sampleAreas     = 5
	sampleFarmers   = 5
	samplePurchases = 10
)

type contextStats struct {
	TotalAreas     int     `json:"totalAreas"`
	TotalFarmers   int     `json:"totalFarmers"`
	TotalPurchases int     `json:"totalPurchases"`
	TotalVolume    float64 `json:"totalVolume"`
}

type contextSample struct {
	Areas           []entities.GrowingArea    `json:"areas"`
	Farmers         []entities.Farmer         `json:"farmers"`
	RecentPurchases []entities.PurchaseRecord `json:"recentPurchases"`
}

// ContextSummary is the bounded view of the store sent with every question.
type ContextSummary struct {
	Summary    string        `json:"summary"`
	Stats      contextStats  `json:"stats"`
	SampleData contextSample `json:"sampleData"`
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	if s == nil {
		return []T{}
	}
	return s
}

func BuildContext(snap store.Snapshot, lang string) ContextSummary {
	return ContextSummary{
		Summary: i18n.T(lang, i18n.KeyAISummary),
		Stats: contextStats{
			TotalAreas:     len(snap.Areas),
			TotalFarmers:   len(snap.Farmers),
			TotalPurchases: len(snap.Purchases),
			TotalVolume:    report.TotalVolume(snap.Purchases),
		},
		SampleData: contextSample{
			Areas:           head(snap.Areas, sampleAreas),
			Farmers:         head(snap.Farmers, sampleFarmers),
			RecentPurchases: head(snap.Purchases, samplePurchases),
		},
	}
}

// BuildPrompt composes instructions, the JSON context and the user question.
func BuildPrompt(question string, snap store.Snapshot, lang string) (string, error) {
	ctxJSON, err := sonic.Marshal(BuildContext(snap, lang))
	if err != nil {
		return "", fmt.Errorf("marshal context: %w", err)
	}
	reply := ""
	if lang == i18n.LangEN {
		reply = "\nTrả lời bằng tiếng Anh."
	}
	return fmt.Sprintf(`
Bạn là chuyên gia phân tích dữ liệu nông nghiệp cho hệ thống "Hoa Cương".
Dữ liệu hiện tại của hệ thống, tóm tắt dạng JSON:
%s

Trả lời câu hỏi hoặc yêu cầu của người dùng ngắn gọn, chuyên nghiệp và hữu ích.
Tập trung vào xu hướng, hiệu quả năng suất hoặc gợi ý kinh doanh.
Định dạng câu trả lời bằng Markdown.%s

Câu hỏi của người dùng: "%s"
`, ctxJSON, reply, question), nil
}
