// Package crisis supplies the catalog of adverse events that
// periodically hit the lab. A crisis is transient: it is never
// persisted, and resolving it applies its effect exactly once.
package crisis

// Effect is the economic damage, expressed as deltas applied to the
// ledger with clamp-at-zero semantics.
type Effect struct {
	Funding  float64 `json:"funding"`
	Research float64 `json:"research"`
}

// Event is a catalog entry. Every response applies the same Effect;
// the choice is narrative flavor only. There are no good options.
type Event struct {
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Effect    Effect   `json:"effect"`
	Responses []string `json:"responses"`
}

var events = []Event{
	{
		Title:   "Federal Funding Freeze",
		Message: "All grant disbursements are paused pending a review of whether science is real.",
		Effect:  Effect{Funding: -8000},
		Responses: []string{
			"Write a strongly worded letter",
			"Wait quietly and hope",
		},
	},
	{
		Title:   "Centrifuge Incident",
		Message: "Someone balanced the centrifuge with a banana. The banana won.",
		Effect:  Effect{Funding: -3500},
		Responses: []string{
			"Pay for repairs",
			"Declare it modern art",
		},
	},
	{
		Title:   "Peer Review Ambush",
		Message: "Reviewer 2 has demanded eleven new experiments and a different conclusion.",
		Effect:  Effect{Research: -40},
		Responses: []string{
			"Do the experiments",
			"Appeal to the editor",
		},
	},
	{
		Title:   "Indirect Costs Audit",
		Message: "The university discovered your lab and would like 62% of it.",
		Effect:  Effect{Funding: -12000},
		Responses: []string{
			"Negotiate",
			"Hide the equipment in the basement",
		},
	},
	{
		Title:   "Conference Travel Disaster",
		Message: "The whole team is stranded at a layover airport with one shared poster tube.",
		Effect:  Effect{Funding: -2500, Research: -10},
		Responses: []string{
			"Book new flights",
			"Present the poster at the airport bar",
		},
	},
	{
		Title:   "Preprint Scooped",
		Message: "A rival lab posted your exact result, typos included.",
		Effect:  Effect{Research: -60},
		Responses: []string{
			"Race to publish anyway",
			"Subtweet furiously",
		},
	},
	{
		Title:   "Freezer Failure",
		Message: "The -80 freezer became a +20 freezer over the long weekend.",
		Effect:  Effect{Funding: -6000, Research: -25},
		Responses: []string{
			"Order new samples",
			"Rebrand the study as room-temperature biology",
		},
	},
	{
		Title:   "Wellness Mandate",
		Message: "Leadership has replaced the grant office with a mindfulness consultant.",
		Effect:  Effect{Funding: -4000},
		Responses: []string{
			"Attend the breathing workshop",
			"Bill the consultant for your time",
		},
	},
	{
		Title:   "IRB Paperwork Avalanche",
		Message: "Form 7-B now requires form 7-C, which requires form 7-B.",
		Effect:  Effect{Research: -30},
		Responses: []string{
			"File both forms forever",
			"Claim the study involves no humans, including the researchers",
		},
	},
	{
		Title:   "Billionaire Changes Mind",
		Message: "Your benefactor has pivoted from curing disease to colonizing the moon.",
		Effect:  Effect{Funding: -15000},
		Responses: []string{
			"Pitch moon-adjacent research",
			"Accept the void",
		},
	},
}

// Catalog returns every event that can be drawn.
func Catalog() []Event {
	return events
}
