package derive

import "math"

// Weights of the X ranking score.
const (
	NewYorkBonus      = 2.5
	SimilarityWeight  = 5.0
	FollowersWeight   = 0.5
	RatioWeight       = 0.5
	AverageLikeWeight = 0.5
)

// XScoreInput is what the X ranking needs to know about one person.
type XScoreInput struct {
	NormalizedLocation string
	Similarity         float64
	Followers          int
	FollowerRatio      float64
	AverageLikes       float64
}

// XScore is a composite ranking score and its components.
type XScore struct {
	Location   float64
	Similarity float64
	Followers  float64
	Ratio      float64
	Likes      float64
	Total      float64
}

// ScoreX ranks a person for an X bio search. The follower ratio is capped
// at 10 before weighting.
func ScoreX(in XScoreInput) XScore {
	var s XScore
	if in.NormalizedLocation == LocationNewYork {
		s.Location = NewYorkBonus
	}
	s.Similarity = in.Similarity * SimilarityWeight
	s.Followers = Dampen(float64(in.Followers)) * FollowersWeight
	s.Ratio = math.Min(in.FollowerRatio/10, 1) * RatioWeight
	s.Likes = Dampen(in.AverageLikes) * AverageLikeWeight
	s.Total = s.Location + s.Similarity + s.Followers + s.Ratio + s.Likes
	return s
}
