package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case Community:
		o.printCommunity(v)
	case CommunityList:
		o.printCommunityList(v)
	case StatesResult:
		o.printStates(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session describes the active identity
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
}

// Community is the CLI view of a community record
type Community struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	State           string    `json:"state"`
	CreatorUsername string    `json:"creator_username"`
	HasImage        bool      `json:"has_image"`
	CreatedAt       time.Time `json:"created_at"`
}

// CommunityList wraps a list of communities
type CommunityList struct {
	Communities []Community `json:"communities"`
}

// StatesResult lists the accepted region labels
type StatesResult struct {
	States []string `json:"states"`
}

func (o *Output) printSession(s Session) {
	if !s.Authenticated {
		fmt.Println("Not signed in")
		return
	}
	fmt.Printf("Signed in as: %s\n", s.Username)
	if s.BirthDate != "" {
		fmt.Printf("Birth date: %s\n", s.BirthDate)
	}
}

func (o *Output) printCommunity(c Community) {
	fmt.Printf("Community: %s (%s)\n", c.Name, c.ID)
	fmt.Printf("State: %s\n", c.State)
	fmt.Printf("Creator: %s\n", c.CreatorUsername)
	if c.HasImage {
		fmt.Println("Image: yes")
	}
}

func (o *Output) printCommunityList(l CommunityList) {
	if len(l.Communities) == 0 {
		fmt.Println("No communities")
		return
	}
	fmt.Printf("Communities (%d):\n", len(l.Communities))
	for _, c := range l.Communities {
		fmt.Printf("  - %s [%s] by %s (%s)\n", c.Name, c.State, c.CreatorUsername, c.ID)
	}
}

func (o *Output) printStates(s StatesResult) {
	for _, state := range s.States {
		fmt.Println(state)
	}
}
