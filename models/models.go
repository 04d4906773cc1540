package models

import "time"

// AdminAccount is a dashboard operator. Accounts are created through
// registration and only ever removed by hand.
type AdminAccount struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

type BlogPost struct {
	ID       string    `bson:"id" json:"id"`
	Title    string    `bson:"title" json:"title"`
	Slug     string    `bson:"slug" json:"slug"`
	Date     time.Time `bson:"date" json:"date"`
	Content  string    `bson:"content" json:"content"`
	Category string    `bson:"category,omitempty" json:"category,omitempty"`
	Author   string    `bson:"author,omitempty" json:"author,omitempty"`
}

type TeamMember struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Position string `bson:"position" json:"position"`
	Slug     string `bson:"slug" json:"slug"`
	Bio      string `bson:"bio,omitempty" json:"bio,omitempty"`
	Image    string `bson:"image,omitempty" json:"image,omitempty"`
}

// InstagramPost mirrors a post pulled from the social account. Aggregate
// numbers are derived on read, never written back.
type InstagramPost struct {
	ID       string    `bson:"id" json:"id"`
	Image    string    `bson:"image" json:"image"`
	Caption  string    `bson:"caption" json:"caption"`
	Username string    `bson:"username" json:"username"`
	Likes    int       `bson:"likes" json:"likes"`
	Comments int       `bson:"comments" json:"comments"`
	Saves    int       `bson:"saves" json:"saves"`
	Date     time.Time `bson:"date" json:"date"`
}

type InstagramStats struct {
	Posts    int `json:"posts"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Saves    int `json:"saves"`
}

type NewsletterSubscriber struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	SubscribedAt time.Time `bson:"subscribedAt" json:"subscribedAt"`
}

// SiteSettings is a singleton document, always updated in place.
type SiteSettings struct {
	ID         string             `bson:"id" json:"id"`
	General    GeneralSettings    `bson:"general" json:"general"`
	Appearance AppearanceSettings `bson:"appearance" json:"appearance"`
	SEO        SEOSettings        `bson:"seo" json:"seo"`
	Analytics  AnalyticsSettings  `bson:"analytics" json:"analytics"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type GeneralSettings struct {
	SiteName     string `bson:"siteName" json:"siteName"`
	Tagline      string `bson:"tagline" json:"tagline"`
	ContactEmail string `bson:"contactEmail" json:"contactEmail"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
}

type AppearanceSettings struct {
	Theme         string `bson:"theme" json:"theme"`
	AccentColor   string `bson:"accentColor" json:"accentColor"`
	LogoURL       string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	StorageBucket string `bson:"storageBucket,omitempty" json:"storageBucket,omitempty"`
}

type SEOSettings struct {
	MetaTitle       string `bson:"metaTitle" json:"metaTitle"`
	MetaDescription string `bson:"metaDescription" json:"metaDescription"`
	OGImage         string `bson:"ogImage,omitempty" json:"ogImage,omitempty"`
}

type AnalyticsSettings struct {
	GoogleAnalyticsID string `bson:"googleAnalyticsId,omitempty" json:"googleAnalyticsId,omitempty"`
	MetaPixelID       string `bson:"metaPixelId,omitempty" json:"metaPixelId,omitempty"`
}
