package wled

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ledray/internal/led"
)

func testClient(srv *httptest.Server) *Client {
	c := New("placeholder", time.Second)
	c.url = srv.URL
	return c
}

func TestSendFrameWireFormat(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		body, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	c := testClient(srv)
	pixels := []led.RGB{{R: 255}, {G: 255}, {B: 255}}
	if err := c.SendFrame(pixels); err != nil {
		t.Fatalf("SendFrame: %v", err)
	}

	var got struct {
		On  bool `json:"on"`
		Bri int  `json:"bri"`
		Seg []struct {
			ID int      `json:"id"`
			I  [][3]int `json:"i"`
		} `json:"seg"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal request body: %v\n%s", err, body)
	}
	if !got.On || got.Bri != 255 {
		t.Errorf("on=%v bri=%d, want on=true bri=255", got.On, got.Bri)
	}
	if len(got.Seg) != 1 || got.Seg[0].ID != 0 {
		t.Fatalf("segments = %+v, want a single segment with id 0", got.Seg)
	}
	want := [][3]int{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
	if len(got.Seg[0].I) != len(want) {
		t.Fatalf("pixel count = %d, want %d", len(got.Seg[0].I), len(want))
	}
	for i, px := range want {
		if got.Seg[0].I[i] != px {
			t.Errorf("pixel %d = %v, want %v", i, got.Seg[0].I[i], px)
		}
	}
}

func TestSendFrameDeviceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv)
	err := c.SendFrame([]led.RGB{{R: 1, G: 2, B: 3}})
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if c.Drops() != 1 || c.Frames() != 0 {
		t.Fatalf("frames=%d drops=%d, want 0/1", c.Frames(), c.Drops())
	}
}

func TestSendFrameConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // deliberately dead

	c := testClient(srv)
	if err := c.SendFrame([]led.RGB{{R: 1, G: 2, B: 3}}); err == nil {
		t.Fatal("expected an error for a refused connection")
	}

	// A failed send must not poison the client; the next frame goes through
	// once the device is reachable again.
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv2.Close()
	c.url = srv2.URL
	if err := c.SendFrame([]led.RGB{{R: 1, G: 2, B: 3}}); err != nil {
		t.Fatalf("send after recovery: %v", err)
	}
	if c.Frames() != 1 || c.Drops() != 1 {
		t.Fatalf("frames=%d drops=%d, want 1/1", c.Frames(), c.Drops())
	}
}

func TestClearSendsAllBlack(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	c := testClient(srv)
	if err := c.Clear(4); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !strings.Contains(string(body), `"i":[[0,0,0],[0,0,0],[0,0,0],[0,0,0]]`) {
		t.Fatalf("clear body = %s, want four black pixels", body)
	}
}

func TestNewBuildsDeviceURL(t *testing.T) {
	c := New("192.168.30.119", 0)
	if c.URL() != "http://192.168.30.119/json/state" {
		t.Fatalf("url = %q", c.URL())
	}
}
