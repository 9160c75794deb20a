package models

// Course is an entry of the static course catalog shown on /courses.
type Course struct {
	Title       string
	Location    string
	Duration    string
	Instructor  string
	Description string
	Image       string
}
