package i18n

const (
	KeyAINoKey        = "ai.no_key"
	KeyAIEmpty        = "ai.empty"
	KeyAIFailed       = "ai.failed"
	KeyAIPromptEmpty  = "ai.prompt_empty"
	KeyAIRateLimited  = "ai.rate_limited"
	KeyAISummary      = "ai.summary"
	KeyStatusActive   = "status.active"
	KeyStatusInactive = "status.inactive"
	KeyAreaLabel      = "farmer.area_label"
	KeyAreaUnassigned = "farmer.area_unassigned"
	KeyFarmerUnknown  = "purchase.farmer_unknown"
	KeyVolumeTons     = "dashboard.volume_tons"
	KeyRevenueMillion = "dashboard.revenue_million"
	KeyConfirmReset   = "settings.confirm_reset"
	KeyConfirmClear   = "settings.confirm_clear"
	KeyResetDone      = "settings.reset_done"
	KeyClearDone      = "settings.clear_done"
	KeyNotFound       = "error.not_found"
	KeyBadJSON        = "error.bad_json"

	KeyColDate     = "export.col_date"
	KeyColFarmer   = "export.col_farmer"
	KeyColWeight   = "export.col_weight"
	KeyColQuality  = "export.col_quality"
	KeyColPrice    = "export.col_price"
	KeyColTotal    = "export.col_total"
	KeyColNote     = "export.col_note"
	KeySheetName   = "export.sheet"
	KeyExportFile  = "export.file"
	KeySuggestions = "ai.suggestions"
)

var vi = map[string]string{
	KeyAINoKey:        "Vui lòng cấu hình API Key để sử dụng tính năng AI.",
	KeyAIEmpty:        "Không thể tạo phân tích vào lúc này.",
	KeyAIFailed:       "Đã xảy ra lỗi khi kết nối với AI. Vui lòng thử lại sau.",
	KeyAIPromptEmpty:  "Vui lòng nhập câu hỏi.",
	KeyAIRateLimited:  "Bạn gửi yêu cầu quá nhanh. Vui lòng thử lại sau.",
	KeyAISummary:      "Dữ liệu nông nghiệp của Hoa Cương",
	KeyStatusActive:   "Đang hoạt động",
	KeyStatusInactive: "Ngừng hoạt động",
	KeyAreaLabel:      "Vùng: %s",
	KeyAreaUnassigned: "Chưa gán vùng",
	KeyFarmerUnknown:  "Không rõ",
	KeyVolumeTons:     "%s Tấn",
	KeyRevenueMillion: "%s Tr",
	KeyConfirmReset:   "Bạn có chắc chắn muốn khôi phục dữ liệu về mặc định? Dữ liệu hiện tại sẽ bị thay thế.",
	KeyConfirmClear:   "CẢNH BÁO: Bạn sắp xóa toàn bộ dữ liệu khỏi hệ thống. Hành động này không thể hoàn tác.",
	KeyResetDone:      "Dữ liệu đã được khôi phục thành công!",
	KeyClearDone:      "Đã xóa toàn bộ dữ liệu!",
	KeyNotFound:       "Không tìm thấy",
	KeyBadJSON:        "Dữ liệu gửi lên không hợp lệ",

	KeyColDate:    "Ngày",
	KeyColFarmer:  "Nông Dân",
	KeyColWeight:  "Khối Lượng (kg)",
	KeyColQuality: "Chất Lượng",
	KeyColPrice:   "Đơn Giá (VND)",
	KeyColTotal:   "Thành Tiền (VND)",
	KeyColNote:    "Ghi Chú",
	KeySheetName:  "Thu Mua",
	KeyExportFile: "HoaCuong_ThuMua.xlsx",
	KeySuggestions: "Tổng kết sản lượng tháng này?|Vùng nào đang có năng suất thấp nhất?|" +
		"Dự báo xu hướng giá dựa trên dữ liệu?|Gợi ý tối ưu hóa thu mua?",
}

var en = map[string]string{
	KeyAINoKey:        "Please configure an API key to use the AI features.",
	KeyAIEmpty:        "Unable to generate an analysis right now.",
	KeyAIFailed:       "Could not reach the AI service. Please try again later.",
	KeyAIPromptEmpty:  "Please enter a question.",
	KeyAIRateLimited:  "Too many requests. Please try again later.",
	KeyAISummary:      "Hoa Cuong agricultural data",
	KeyStatusActive:   "Active",
	KeyStatusInactive: "Inactive",
	KeyAreaLabel:      "Area: %s",
	KeyAreaUnassigned: "Unassigned",
	KeyFarmerUnknown:  "Unknown",
	KeyVolumeTons:     "%s t",
	KeyRevenueMillion: "%s M",
	KeyConfirmReset:   "Restore the default data? Current data will be replaced.",
	KeyConfirmClear:   "WARNING: all data will be deleted. This cannot be undone.",
	KeyResetDone:      "Data restored.",
	KeyClearDone:      "All data deleted.",
	KeyNotFound:       "Not found",
	KeyBadJSON:        "Invalid request body",

	KeyColDate:    "Date",
	KeyColFarmer:  "Farmer Name",
	KeyColWeight:  "Weight(kg)",
	KeyColQuality: "Quality",
	KeyColPrice:   "Unit Price",
	KeyColTotal:   "Total Amount",
	KeyColNote:    "Note",
	KeySheetName:  "Purchases",
	KeyExportFile: "HoaCuong_Purchases.xlsx",
	KeySuggestions: "Summarize this month's volume?|Which area has the lowest yield?|" +
		"Forecast the price trend from the data?|How can purchasing be optimized?",
}
