// Package model defines shared data structures.
package model

import "time"

// PageSection is the editable header block of a named page.
type PageSection struct {
	Page            string `json:"page"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	BackgroundImage string `json:"backgroundImage"`
}

// PortfolioItem represents one project in the portfolio catalog.
type PortfolioItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Period      string  `json:"period"`
	Role        string  `json:"role"`
	Overview    string  `json:"overview"`
	Details     Details `json:"details"`
	Client      string  `json:"client"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Gallery     Gallery `json:"gallery"`
	Size        string  `json:"size"`
	YoutubeLink string  `json:"youtubeLink,omitempty"`
}

// DownloadItem represents one downloadable file entry.
type DownloadItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	FileURL     string    `json:"file_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Category groups download items by name.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NoticeItem is one entry on the notice board.
type NoticeItem struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	Views   int64     `json:"views"`
}

// MainCard is one of the landing page feature cards.
type MainCard struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Link  string `json:"link"`
	Icon  string `json:"icon"`
}

// Settings key constants.
const (
	SettingEditorAPIKey = "editor_api_key"
)
