package hebcal

// response is the converter payload for both directions
// Only the fields we read are declared
type response struct {
	GY     int    `json:"gy"`
	GM     int    `json:"gm"`
	GD     int    `json:"gd"`
	HY     int    `json:"hy"`
	HM     string `json:"hm"`
	HD     int    `json:"hd"`
	Hebrew string `json:"hebrew"`
	Error  string `json:"error"`
}

func (r response) hasGregorian() bool { return r.GY != 0 && r.GM != 0 && r.GD != 0 }
