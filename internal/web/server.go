// Package web serves the bedtime calculator as an HTML form with an SVG
// 24-hour ring.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sleeptimer/internal/bedtime"
)

const (
	ringSize   = 260.0
	ringRadius = 95.0
)

// Defaults prefill the form; the redirect URL only carries values that
// differ from them.
type Defaults struct {
	Wake   string
	Choice string
	Custom string
}

// DefaultsFor turns a configured hours value into a menu choice, falling
// back to a custom entry when it is not on the menu.
func DefaultsFor(wake, hours string) Defaults {
	choice, custom := bedtime.ChoiceFor(hours)
	return Defaults{Wake: wake, Choice: choice, Custom: custom}
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type ResultView struct {
	Now     string
	Wake    string
	Hours   string
	Until   string
	Primary string
	Earlier string
	Later   string
	Cycles  int
	Marks   []string

	Ring bedtime.RingLayout
	Size float64
}

type PageData struct {
	Wake    string
	Choice  string
	Custom  string
	Options []Option

	Version string

	Error  string
	Result *ResultView
}

type Server struct {
	tpl      *template.Template
	log      *slog.Logger
	now      func() time.Time
	defaults Defaults
	version  string
	announce io.Writer
}

type ServerOption func(*Server)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) ServerOption {
	return func(s *Server) { s.now = now }
}

func WithVersion(v string) ServerOption {
	return func(s *Server) { s.version = v }
}

// WithAnnounce prints the reachable URLs to w once the listener is bound.
func WithAnnounce(w io.Writer) ServerOption {
	return func(s *Server) { s.announce = w }
}

func NewServer(logger *slog.Logger, defaults Defaults, opts ...ServerOption) *Server {
	s := &Server{
		tpl:      template.Must(template.New("page").Parse(pageHTML)),
		log:      logger,
		now:      time.Now,
		defaults: defaults,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /calc", s.handleCalc)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok\n")
	})
	return s.logRequests(mux)
}

// ListenAndServe binds addr, announces the URLs it is reachable on and
// serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	if s.announce != nil {
		fmt.Fprintln(s.announce, "Listening on:")
		for _, u := range ListenURLs(ln.Addr()) {
			fmt.Fprintf(s.announce, "  %s\n", u)
		}
		fmt.Fprintln(s.announce)
	}
	return s.Serve(ctx, ln)
}

// Serve runs on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down web server", "addr", ln.Addr().String())
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := s.page(
		queryOr(q, "wake", s.defaults.Wake),
		queryOr(q, "hours", s.defaults.Choice),
		queryOr(q, "custom", s.defaults.Custom),
	)

	if data.Wake != "" {
		res, err := s.calculate(data.Wake, data.Choice, data.Custom)
		if err != nil {
			data.Error = bedtime.StatusMessage(err)
		} else {
			data.Result = newResultView(res)
		}
	}
	s.render(w, data)
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	data := s.page(
		strings.TrimSpace(r.FormValue("wake")),
		strings.TrimSpace(r.FormValue("hours")),
		strings.TrimSpace(r.FormValue("custom")),
	)

	if _, err := s.calculate(data.Wake, data.Choice, data.Custom); err != nil {
		s.log.Debug("rejected bedtime input", "wake", data.Wake, "hours", data.Choice, "custom", data.Custom, "error", err)
		data.Error = bedtime.StatusMessage(err)
		s.render(w, data)
		return
	}
	http.Redirect(w, r, s.buildCalcURL(data.Wake, data.Choice, data.Custom), http.StatusFound)
}

func (s *Server) calculate(wake, choice, custom string) (*bedtime.Result, error) {
	hours, err := bedtime.ResolveHours(choice, custom)
	if err != nil {
		return nil, err
	}
	return bedtime.Calculate(s.now(), wake, hours)
}

func (s *Server) page(wake, choice, custom string) PageData {
	data := PageData{
		Wake:    wake,
		Choice:  choice,
		Custom:  custom,
		Version: s.version,
	}
	for _, h := range bedtime.MenuHours {
		v := strconv.Itoa(h)
		data.Options = append(data.Options, Option{Value: v, Label: v + " h", Selected: v == choice})
	}
	data.Options = append(data.Options, Option{
		Value:    bedtime.CustomChoice,
		Label:    "custom",
		Selected: choice == bedtime.CustomChoice,
	})
	return data
}

func (s *Server) render(w http.ResponseWriter, data PageData) {
	if err := s.tpl.Execute(w, data); err != nil {
		s.log.Error("failed to render page", "error", err)
	}
}

// buildCalcURL returns "/?wake=..." with only the non-default params.
func (s *Server) buildCalcURL(wake, choice, custom string) string {
	v := url.Values{}
	v.Set("wake", wake)
	if choice != "" && choice != s.defaults.Choice {
		v.Set("hours", choice)
	}
	if choice == bedtime.CustomChoice && custom != "" && custom != s.defaults.Custom {
		v.Set("custom", custom)
	}
	return "/?" + v.Encode()
}

func newResultView(r *bedtime.Result) *ResultView {
	v := &ResultView{
		Now:     bedtime.FormatClock(r.Now, r.Now),
		Wake:    bedtime.FormatClock(r.Wake, r.Now),
		Hours:   bedtime.FormatHours(r.DesiredHours),
		Until:   bedtime.FormatHM(r.Until),
		Primary: bedtime.FormatClock(r.Primary, r.Now),
		Later:   bedtime.FormatClock(r.Later, r.Now),
		Cycles:  r.Cycles(),
		Ring:    bedtime.Layout(r, ringSize/2, ringSize/2, ringRadius),
		Size:    ringSize,
	}
	if r.Earlier != nil {
		v.Earlier = bedtime.FormatClock(*r.Earlier, r.Now)
	}
	for _, m := range r.CycleMarks {
		v.Marks = append(v.Marks, bedtime.FormatClock(m, r.Now))
	}
	return v
}

// queryOr is the trimmed query value for key, or def when it is blank.
func queryOr(q url.Values, key, def string) string {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		return v
	}
	return def
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// ListenURLs lists the http URLs for a bound address. A wildcard bind
// expands to loopback plus every IPv4 address of the interfaces that are up.
func ListenURLs(addr net.Addr) []string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return []string{"http://" + addr.String() + "/"}
	}
	link := func(ip net.IP) string {
		return "http://" + net.JoinHostPort(ip.String(), strconv.Itoa(tcp.Port)) + "/"
	}
	if !tcp.IP.IsUnspecified() {
		return []string{link(tcp.IP)}
	}

	urls := []string{link(net.IPv4(127, 0, 0, 1))}
	ifaces, err := net.Interfaces()
	if err != nil {
		return urls
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipnet, ok := a.(*net.IPNet)
			if !ok || ipnet.IP.IsLoopback() || ipnet.IP.To4() == nil {
				continue
			}
			urls = append(urls, link(ipnet.IP))
		}
	}
	return urls
}
