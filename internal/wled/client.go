// Package wled speaks the WLED JSON realtime API: each frame is POSTed to
// /json/state as a segment update carrying every pixel in transmission
// order. Delivery is best effort; a failed frame is dropped, never retried.
package wled

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"ledray/internal/led"
)

// statsInterval is how often cumulative send statistics are logged.
const statsInterval = 2 * time.Second

// state is the JSON body for a full-frame segment update.
type state struct {
	On       bool      `json:"on"`
	Bri      int       `json:"bri"`
	Segments []segment `json:"seg"`
}

type segment struct {
	ID     int        `json:"id"`
	Pixels [][3]uint8 `json:"i"`
}

// Client streams pixel buffers to a single WLED device.
type Client struct {
	url  string
	http *http.Client

	frames    int
	drops     int
	started   time.Time
	lastStats time.Time
}

// New returns a client for the device at host (IP or hostname). The request
// timeout bounds how long a stalled device can hold up the caller's frame
// loop, so it should be on the order of the stream interval.
func New(host string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 250 * time.Millisecond
	}
	return &Client{
		url:  fmt.Sprintf("http://%s/json/state", host),
		http: &http.Client{Timeout: timeout},
	}
}

// URL returns the device endpoint, mainly for logging.
func (c *Client) URL() string { return c.url }

// SendFrame transmits one LED pixel buffer, already in transmission order.
// Any transport or HTTP failure is returned to the caller, which is
// expected to log it and move on to the next frame.
func (c *Client) SendFrame(pixels []led.RGB) error {
	payload := state{
		On:       true,
		Bri:      255,
		Segments: []segment{{ID: 0, Pixels: packPixels(pixels)}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("wled: encode frame: %w", err)
	}

	resp, err := c.http.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		c.drops++
		return fmt.Errorf("wled: send frame: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.drops++
		return fmt.Errorf("wled: device returned %s", resp.Status)
	}

	c.frames++
	c.logStats()
	return nil
}

// Clear blanks the whole matrix. Used by the calibration tool between
// patterns.
func (c *Client) Clear(count int) error {
	return c.SendFrame(make([]led.RGB, count))
}

// Frames returns how many frames were delivered successfully.
func (c *Client) Frames() int { return c.frames }

// Drops returns how many frames failed to deliver.
func (c *Client) Drops() int { return c.drops }

func (c *Client) logStats() {
	now := time.Now()
	if c.started.IsZero() {
		c.started = now
		c.lastStats = now
		return
	}
	if now.Sub(c.lastStats) < statsInterval {
		return
	}
	elapsed := now.Sub(c.started).Seconds()
	fps := 0.0
	if elapsed > 0 {
		fps = float64(c.frames) / elapsed
	}
	log.Printf("wled: %d frames sent (%d dropped), %.1f fps", c.frames, c.drops, fps)
	c.lastStats = now
}

func packPixels(pixels []led.RGB) [][3]uint8 {
	out := make([][3]uint8, len(pixels))
	for i, px := range pixels {
		out[i] = [3]uint8{px.R, px.G, px.B}
	}
	return out
}
