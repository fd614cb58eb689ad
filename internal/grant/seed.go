package grant

// Agency is a funding body. SuccessRate is the base percentage before
// any writer bonus; awards are drawn uniformly from [MinAward,MaxAward].
type Agency struct {
	Name        string  `json:"name"`
	SuccessRate float64 `json:"successRate"`
	MinAward    float64 `json:"minAward"`
	MaxAward    float64 `json:"maxAward"`
}

var agencies = []Agency{
	{Name: "NIH (Now Incredibly Hindered)", SuccessRate: 8, MinAward: 30000, MaxAward: 100000},
	{Name: "NSF (Nearly Sufficient Funds)", SuccessRate: 5, MinAward: 20000, MaxAward: 50000},
	{Name: "RFK Jr Wellness Foundation", SuccessRate: 25, MinAward: 5000, MaxAward: 15000},
	{Name: "MAGA Science Initiative", SuccessRate: 30, MinAward: 10000, MaxAward: 25000},
	{Name: "Tech Billionaire Whim Fund", SuccessRate: 1, MinAward: 500000, MaxAward: 2000000},
}

func Agencies() []Agency {
	return agencies
}
