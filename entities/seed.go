package entities

// Seed returns a fresh copy of the built-in data set.
func Seed() (areas []GrowingArea, farmers []Farmer, purchases []PurchaseRecord) {
	areas = []GrowingArea{
		{ID: "1", Code: "VN-DL-001", Name: "Vùng Cầu Đất 1", Location: "Xã Xuân Trường, Đà Lạt", Acreage: 15.5, Status: AreaActive},
		{ID: "2", Code: "VN-DL-002", Name: "Vùng Trại Mát A", Location: "Phường 11, Đà Lạt", Acreage: 8.2, Status: AreaActive},
		{ID: "3", Code: "VN-LD-003", Name: "Vùng Lạc Dương Bắc", Location: "Huyện Lạc Dương, Lâm Đồng", Acreage: 22.0, Status: AreaInactive},
	}
	farmers = []Farmer{
		{ID: "f1", Name: "Nguyễn Văn An", Phone: "0912345678", AreaID: "1", Address: "Thôn 1, Xuân Trường"},
		{ID: "f2", Name: "Trần Thị Bích", Phone: "0987654321", AreaID: "1", Address: "Thôn 3, Xuân Trường"},
		{ID: "f3", Name: "Lê Văn Cường", Phone: "0909090909", AreaID: "2", Address: "Tổ 5, Trại Mát"},
	}
	purchases = []PurchaseRecord{
		{ID: "p1", FarmerID: "f1", Date: "2023-10-20", Weight: 500, PricePerKg: 15000, Quality: QualityType1, TotalAmount: 7500000, Note: "Hàng đẹp"},
		{ID: "p2", FarmerID: "f2", Date: "2023-10-21", Weight: 300, PricePerKg: 12000, Quality: QualityType2, TotalAmount: 3600000},
		{ID: "p3", FarmerID: "f1", Date: "2023-10-22", Weight: 450, PricePerKg: 15500, Quality: QualityType1, TotalAmount: 6975000},
		{ID: "p4", FarmerID: "f3", Date: "2023-10-22", Weight: 1200, PricePerKg: 14000, Quality: QualityType1, TotalAmount: 16800000},
		{ID: "p5", FarmerID: "f2", Date: "2023-10-23", Weight: 200, PricePerKg: 8000, Quality: QualityType3, TotalAmount: 1600000, Note: "Hơi xấu"},
	}
	return areas, farmers, purchases
}
