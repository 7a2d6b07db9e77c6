package reddit

// listing mirrors the subset of the public listing endpoint response the
// scanner consumes.
type listing struct {
	Data struct {
		Children []struct {
			Data submission `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type submission struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	URL         string  `json:"url"`
	SelfText    string  `json:"selftext"`
	Permalink   string  `json:"permalink"`
	IsSelf      bool    `json:"is_self"`
	Stickied    bool    `json:"stickied"`
}
