package view

type NewsCard struct {
	ID        int
	Slug      string
	Title     string
	Summary   string
	ImageURL  string
	Published string
}

type NewsDetail struct {
	ID        int
	Title     string
	Content   string
	ImageURL  string
	Published string
}
