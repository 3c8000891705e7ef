// Package api provides the HTTP client for the Votecaster backend.
package api

import "time"

// Census type constants. A community's census type decides how voter
// eligibility is established.
const (
	CensusTypeERC20   = "erc20"
	CensusTypeNFT     = "nft"
	CensusTypeChannel = "channel"
)

// Profile is the authenticated Farcaster user's account information as the
// backend expects it on the wire.
type Profile struct {
	Bio           string   `json:"bio"`
	Custody       string   `json:"custody"`
	DisplayName   string   `json:"displayName"`
	FID           uint64   `json:"fid"`
	Avatar        string   `json:"pfpUrl"`
	Username      string   `json:"username"`
	Verifications []string `json:"verifications"`
}

// CreatePollRequest is the body for POST /create. Duration is a pointer so
// that an absent duration omits the key entirely instead of sending zero.
type CreatePollRequest struct {
	Profile  *Profile `json:"profile"`
	Question string   `json:"question"`
	Duration *int     `json:"duration,omitempty"`
	Options  []string `json:"options"`
}

// Channel is a Farcaster channel as returned by the channel search endpoint.
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Followers   int    `json:"followerCount"`
	ImageURL    string `json:"image"`
	URL         string `json:"url"`
}

// ChannelList is the channel search response envelope.
type ChannelList struct {
	Channels []*Channel `json:"channels"`
}

// Poll holds the full details of a poll as served by the backend.
type Poll struct {
	PollID       string    `json:"electionId"`
	Question     string    `json:"question"`
	Choices      []string  `json:"options,omitempty"`
	Tally        []string  `json:"tally,omitempty"`
	CastedVotes  uint64    `json:"voteCount"`
	Turnout      float32   `json:"turnout"`
	CreatedTime  time.Time `json:"createdTime"`
	EndTime      time.Time `json:"endTime"`
	LastVoteTime time.Time `json:"lastVoteTime"`
	Username     string    `json:"createdByUsername,omitempty"`
	DisplayName  string    `json:"createdByDisplayname,omitempty"`
	Finalized    bool      `json:"finalized"`
}

// PollList is a paginated list of polls.
type PollList struct {
	Polls      []*Poll     `json:"polls"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// CensusAddress is one contract address contributing to a token census.
type CensusAddress struct {
	Address    string `json:"address"`
	Blockchain string `json:"blockchain"`
}

// Community is a curated, access-gated group of eligible voters.
type Community struct {
	ID              uint64           `json:"id"`
	Name            string           `json:"name"`
	LogoURL         string           `json:"logoURL"`
	GroupChatURL    string           `json:"groupChat"`
	CensusType      string           `json:"censusType,omitempty"`
	CensusAddresses []*CensusAddress `json:"censusAddresses,omitempty"`
	CensusChannel   *Channel         `json:"censusChannel,omitempty"`
	Channels        []string         `json:"channels,omitempty"`
	Disabled        bool             `json:"disabled"`
}

// CommunityList is a paginated list of communities.
type CommunityList struct {
	Communities []*Community `json:"communities"`
	Pagination  *Pagination  `json:"pagination,omitempty"`
}

// CreateCommunityRequest is the body for POST /communities.
type CreateCommunityRequest struct {
	Name            string           `json:"name"`
	CensusType      string           `json:"censusType"`
	CensusAddresses []*CensusAddress `json:"censusAddresses,omitempty"`
	Channels        []string         `json:"channels,omitempty"`
	Profile         *Profile         `json:"profile"`
}

// Pagination carries list paging info.
type Pagination struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
	Total  int64 `json:"total"`
}
