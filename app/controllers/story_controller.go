package controllers

import (
	"net/http"

	"sahayog/app/models"
)

// Showcase entries for completed projects. Static content, maintained by
// hand alongside releases.
var successStories = []models.SuccessStory{
	{
		ID:          1,
		Icon:        "Droplet",
		Title:       "Clean Water in Gorkha District",
		Description: "Completed in 2023",
		Content: "We completed a clean water project in three villages in Gorkha District, " +
			"providing over 500 families with access to clean, safe drinking water for the " +
			"first time. This has significantly reduced waterborne diseases and improved " +
			"overall health in the community.",
		Footer: models.StoryFooter{Metric: "500+ families impacted", Icon: "CheckCircle"},
	},
	{
		ID:          2,
		Icon:        "School",
		Title:       "School Renovation in Solukhumbu",
		Description: "Serving over 200 children",
		Content: "Our team renovated a primary school in Solukhumbu that serves over 200 " +
			"children. The project included structural repairs, new furniture, educational " +
			"materials, and teacher training. School attendance has increased by 35% since " +
			"completion.",
		Footer: models.StoryFooter{Metric: "35% increase in attendance", Icon: "CheckCircle"},
	},
	{
		ID:          3,
		Icon:        "Heart",
		Title:       "Healthcare Clinic in Chitwan",
		Description: "Opened in 2024",
		Content: "We established a new healthcare clinic in a remote area of Chitwan, " +
			"providing essential medical services to over 1,000 residents who previously had " +
			"to travel more than 20 kilometers for basic healthcare. The clinic offers " +
			"preventive care, maternal health services, and treatment for common illnesses.",
		Footer: models.StoryFooter{Metric: "1,000+ residents served", Icon: "CheckCircle"},
	},
}

// StoryController serves the static success-story feed
type StoryController struct{}

// NewStoryController creates a new StoryController
func NewStoryController() *StoryController {
	return &StoryController{}
}

// Index lists all success stories
func (sc *StoryController) Index(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, successStories)
}
