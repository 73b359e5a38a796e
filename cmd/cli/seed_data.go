package main

import (
	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
)

var seedPortfolio = []models.PortfolioItem{
	{
		Title:       "Urban Street Art - Hi There",
		Description: "Creative street art mural featuring flowing calligraphy and artistic elements. A vibrant piece that brings life to urban spaces.",
		Category:    "mural",
		ImageURL:    "/portfolio-hithere.webp",
	},
	{
		Title:       "Character Design - Spray Paint Bottle",
		Description: "Original character design featuring a personified spray paint bottle with expressive features. Mixed media artwork combining digital and traditional techniques.",
		Category:    "3d-model",
		ImageURL:    "/portfolio-character.webp",
	},
	{
		Title:       "Abstract Canvas - Neon Energy",
		Description: "Vibrant abstract canvas with bold geometric shapes and neon colors. A dynamic piece exploring the intersection of street art and fine art.",
		Category:    "canvas",
		ImageURL:    "/portfolio-canvas.webp",
	},
	{
		Title:       "Street Art - Pink Graffiti Character",
		Description: "Bold street art piece featuring a character design with vibrant pink and blue color schemes. Combines graffiti techniques with character illustration.",
		Category:    "mural",
		ImageURL:    "/portfolio-street-art.webp",
	},
	{
		Title:       "Fern Backyard Mural",
		Description: "Custom botanical mural featuring vibrant fern designs painted in a residential backyard setting. Demonstrates mastery of natural forms and color harmony.",
		Category:    "mural",
		ImageURL:    "/fern-painting.webp",
	},
}

var seedProducts = []models.Product{
	{
		Name:        "Custom 3D Character Model",
		Description: "Personalized 3D character design and modeling. Perfect for gaming, animation, or 3D printing. Includes base mesh, textures, and source files.",
		Category:    "3d-model",
		Price:       350,
		Stock:       5,
		ImageURL:    "/portfolio-character.png",
	},
	{
		Name:        "Original Canvas Painting - Urban Vibes",
		Description: "Hand-painted original artwork on canvas. 60x80cm. One of a kind piece featuring Brisbane street art inspired design.",
		Category:    "canvas",
		Price:       450,
		Stock:       1,
		ImageURL:    "/portfolio-canvas.jpg",
		IsOneOfOne:  true,
	},
	{
		Name:        "Mini Diorama - Street Scene",
		Description: "Detailed miniature street scene diorama. Hand-crafted with mixed media. Approximately 20x15cm base.",
		Category:    "diorama",
		Price:       280,
		Stock:       3,
		ImageURL:    "/portfolio-street-art.jpg",
	},
}

var seedWorkshops = []models.Workshop{
	{
		Title:       "Creative Workshop - Spray & Stencil",
		Description: "Fortnightly creative workshop covering spray paint and stencil techniques. All materials provided; take home your creation.",
		Time:        "18:00",
		Location:    "2-4 Edmundstone Street, West End",
		Price:       20,
		Capacity:    23,
	},
	{
		Title:       "Creative Workshop - Character Sketching",
		Description: "Fortnightly creative workshop on character design and sketching fundamentals, led by experienced instructors.",
		Time:        "18:00",
		Location:    "2-4 Edmundstone Street, West End",
		Price:       20,
		Capacity:    23,
	},
}
