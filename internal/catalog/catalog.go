// Package catalog holds the fixed reference data served by the
// informational endpoints. The contents are returned verbatim.
package catalog

import "github.com/portfolio/backend/internal/model"

// Projects is the static portfolio project catalog.
var Projects = []model.Project{
	{
		ID:          1,
		Title:       "Cybersecurity Platform",
		Description: "ML/DL-based anomaly detection with automated response playbooks",
		Tags:        []string{"Python", "ML", "API", "Security"},
		Icon:        "🛡️",
	},
	{
		ID:          2,
		Title:       "Movie Recommendation System",
		Description: "IMDb-like interface with AI-powered recommendations",
		Tags:        []string{"React", "Python", "AI"},
		Icon:        "🎬",
	},
	{
		ID:          3,
		Title:       "Mental Wellness Mirror",
		Description: "AI-powered emotional intelligence support platform",
		Tags:        []string{"AI", "NLP", "React"},
		Icon:        "🧠",
	},
	{
		ID:          4,
		Title:       "Smart Allocation Engine",
		Description: "AI-based matching for PM internship allocation",
		Tags:        []string{"Next.js", "ML", "Flask"},
		Icon:        "🎯",
	},
}

// Skills is the static skill proficiency map.
var Skills = model.Skills{
	"AI & Machine Learning":  95,
	"Full-Stack Development": 90,
	"Data Analysis":          88,
	"Cloud & DevOps":         80,
	"Python Programming":     92,
	"JavaScript/React":       88,
	"Database Design":        85,
	"API Development":        90,
}
