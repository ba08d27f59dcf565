// internal/models/social.go
package models

type SocialPost struct {
	ID       string         `json:"id"`
	Content  string         `json:"content"`
	Date     string         `json:"date"`
	Likes    int            `json:"likes"`
	Shares   int            `json:"shares"`
	Platform SocialPlatform `json:"platform"`
}
