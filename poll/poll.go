package poll

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

const (
	MaxCandidates = 10

	EmbedColor           = 0x00bfff
	AbsentMarker         = "❌"
	DefaultAbsentCaption = "私は今シンガポールにいます"

	header = "参加できる日時にリアクションをお願いします"
)

// Markers holds the reaction used for each candidate, in candidate order.
var Markers = [MaxCandidates]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

var (
	ErrTooManyCandidates = errors.New("too many candidates")
	ErrNoCandidates      = errors.New("no candidates")
)

type Request struct {
	Title string
	Codes []string
}

// NewRequest splits a comma separated list of codes. Surrounding spaces are
// trimmed from every entry; empty entries are kept so they fail validation.
func NewRequest(title, datetimes string) Request {
	codes := strings.Split(datetimes, ",")
	for i := range codes {
		codes[i] = strings.TrimSpace(codes[i])
	}
	return Request{Title: title, Codes: codes}
}

type Candidate struct {
	Marker string
	Code   string
	At     time.Time
	Label  string
}

type Poll struct {
	Title         string
	Candidates    []Candidate
	AbsentCaption string
}

// Build validates r and resolves every code against the year of now.
func Build(r Request, now time.Time, absentCaption string) (*Poll, error) {
	if len(r.Codes) > MaxCandidates {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyCandidates, len(r.Codes), MaxCandidates)
	}
	if len(r.Codes) == 0 {
		return nil, ErrNoCandidates
	}
	if absentCaption == "" {
		absentCaption = DefaultAbsentCaption
	}

	p := &Poll{
		Title:         r.Title,
		Candidates:    make([]Candidate, 0, len(r.Codes)),
		AbsentCaption: absentCaption,
	}
	for i, code := range r.Codes {
		at, err := ParseCode(code, now.Year(), now.Location())
		if err != nil {
			return nil, err
		}
		p.Candidates = append(p.Candidates, Candidate{
			Marker: Markers[i],
			Code:   code,
			At:     at,
			Label:  Label(at),
		})
	}

	return p, nil
}

func (p *Poll) EmbedTitle() string {
	return "📅 " + p.Title + " - 日程候補"
}

func (p *Poll) Description() string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	for _, c := range p.Candidates {
		sb.WriteString(c.Marker + " " + c.Label + "\n")
	}
	sb.WriteString(AbsentMarker + " 参加できません。" + p.AbsentCaption)
	return sb.String()
}

func (p *Poll) Embed() *discordgo.MessageEmbed {
	e := embed.NewEmbed().
		SetTitle(p.EmbedTitle()).
		SetColor(EmbedColor).
		MessageEmbed
	// SetDescription cuts at 2048 bytes, which can split a long caption mid-rune.
	e.Description = p.Description()
	return e
}

// Reactions returns the markers to attach, candidates first and the absent marker last.
func (p *Poll) Reactions() []string {
	reactions := make([]string, 0, len(p.Candidates)+1)
	for _, c := range p.Candidates {
		reactions = append(reactions, c.Marker)
	}
	return append(reactions, AbsentMarker)
}
