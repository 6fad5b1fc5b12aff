package domain

// AccountNode describes one account of a chart of accounts template.
//
// ParentCode refers to another node of the same catalog, or to an account
// already stored for the project. Depth is only used to order nodes so that
// parents are materialized before their children.
type AccountNode struct {
	Code       string      `json:"code" yaml:"code"`
	NameAr     string      `json:"name_ar" yaml:"name_ar"`
	NameEn     string      `json:"name_en" yaml:"name_en"`
	Type       AccountType `json:"type" yaml:"type"`
	IsGroup    bool        `json:"is_group" yaml:"group"`
	ParentCode string      `json:"parent_code,omitempty" yaml:"parent"`
	Depth      int32       `json:"depth" yaml:"depth"`
	Tag        string      `json:"tag,omitempty" yaml:"tag"`
}

// Industry maps an industry key to the extension catalog it selects.
type Industry struct {
	Key       string `json:"key"`
	Extension string `json:"extension"`
}
