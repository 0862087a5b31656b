// internal/interfaces/http/handlers/pages.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page represents a static informational page addressed by slug
type Page struct {
	Title    string    `json:"title"`
	Hero     string    `json:"hero"`
	Sections []Section `json:"sections"`
}

// Section groups related entries under a heading
type Section struct {
	Heading string  `json:"heading"`
	Entries []Entry `json:"entries"`
}

// Entry is a titled block of page content
type Entry struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PagesHandler serves the static info pages
type PagesHandler struct {
	pages map[string]Page
}

// NewPagesHandler creates a pages handler with the built-in content
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{pages: infoPages}
}

// GetPage handles GET /pages/:slug
func (h *PagesHandler) GetPage(c *gin.Context) {
	page, ok := h.pages[c.Param("slug")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Page not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": page,
	})
}

var infoPages = map[string]Page{
	"help-center": {
		Title: "Help Center",
		Hero:  "We're here to help",
		Sections: []Section{{
			Heading: "Frequently Asked Questions",
			Entries: []Entry{
				{Title: "How do I track my order?", Body: "Once your order ships, you'll receive a tracking number via email. Use it on our tracking page to see real-time updates."},
				{Title: "What payment methods do you accept?", Body: "We accept all major credit cards, and Cash on Delivery for eligible regions."},
				{Title: "Can I change my order after placing it?", Body: "You can modify your order within 1 hour of placement. Contact our support team for assistance."},
				{Title: "How do I contact support?", Body: "Reach us at support@primecart.com or use the live chat feature available 24/7."},
			},
		}},
	},
	"shipping": {
		Title: "Shipping Information",
		Hero:  "Fast & reliable shipping",
		Sections: []Section{{
			Heading: "Shipping Options",
			Entries: []Entry{
				{Title: "Standard Shipping (5-7 business days)", Body: "Free on all orders over $50. $4.99 for orders under $50."},
				{Title: "Express Shipping (2-3 business days)", Body: "$9.99 flat rate on all orders."},
				{Title: "International Shipping", Body: "Available to most countries. Rates calculated at checkout."},
			},
		}},
	},
	"returns": {
		Title: "Returns & Refunds",
		Hero:  "Easy, hassle-free returns",
		Sections: []Section{{
			Heading: "Return Policy",
			Entries: []Entry{
				{Title: "30-Day Returns", Body: "Return any unused item within 30 days of delivery for a full refund."},
				{Title: "Free Return Shipping", Body: "We provide a prepaid return label for all domestic returns."},
				{Title: "Refund Timeline", Body: "Refunds are processed within 5-7 business days after we receive your return."},
			},
		}},
	},
	"about": {
		Title: "About Us",
		Hero:  "Quality products, honest prices",
		Sections: []Section{{
			Heading: "Our Story",
			Entries: []Entry{
				{Title: "Who we are", Body: "PrimeCart is a curated storefront bringing quality products to customers at fair prices."},
				{Title: "What we believe", Body: "Shopping should be simple, transparent, and enjoyable."},
			},
		}},
	},
	"careers": {
		Title: "Careers",
		Hero:  "Join the team",
		Sections: []Section{{
			Heading: "Open Positions",
			Entries: []Entry{
				{Title: "No openings right now", Body: "Check back soon, or send your resume to careers@primecart.com."},
			},
		}},
	},
	"blog": {
		Title: "Blog",
		Hero:  "News and stories",
		Sections: []Section{{
			Heading: "Latest Posts",
			Entries: []Entry{
				{Title: "Coming soon", Body: "Our blog is under construction."},
			},
		}},
	},
}
