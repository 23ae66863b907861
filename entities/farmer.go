package entities

type Farmer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	AreaID  string `json:"area_id"` // weak ref to GrowingArea.ID, "" = unassigned
}

func (f Farmer) Key() string { return f.ID }
