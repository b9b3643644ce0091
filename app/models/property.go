package models

// PropertyRecord một listing lấy từ record store. Store projection đã
// coalesce hai tên cột lịch sử (province/state, postcode/postal) nên ở
// đây chỉ còn tên canonical; latitude/longitude đã được render thành text.
type PropertyRecord struct {
	ID        interface{} `bson:"_id" json:"id"`
	Address   string      `bson:"address" json:"address"`
	City      string      `bson:"city" json:"city"`
	Province  string      `bson:"province" json:"province"`
	Postcode  string      `bson:"postcode" json:"postcode"`
	Agent     string      `bson:"agent,omitempty" json:"agent,omitempty"`
	Broker    string      `bson:"broker,omitempty" json:"broker,omitempty"`
	Price     string      `bson:"price,omitempty" json:"price,omitempty"`
	Latitude  string      `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude string      `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// NormalizedRecord projection dùng để so sánh, sống trong một request.
// Text fields: trim + lower + bỏ dấu; postal: upper + bỏ spaces; price
// giữ nguyên dạng string đã trim (so sánh low-fidelity có chủ đích).
type NormalizedRecord struct {
	Address   string
	City      string
	Province  string
	Postcode  string
	Agent     string
	Broker    string
	Price     string
	Latitude  string
	Longitude string
}

// PropertyKey khóa định danh bất động sản: cùng một property vật lý
// bất kể chi tiết listing.
func (n NormalizedRecord) PropertyKey() string {
	return n.Address + "|" + n.City + "|" + n.Province + "|" + n.Postcode
}

// FullKey khóa định danh listing đầy đủ: PropertyKey cộng
// price/agent/broker/coordinates.
func (n NormalizedRecord) FullKey() string {
	return n.PropertyKey() + "|" + n.Price + "|" + n.Agent + "|" + n.Broker +
		"|" + n.Latitude + "|" + n.Longitude
}
