// Package metrics exposes Prometheus counters for settled games, fed from
// the event bus, on a small HTTP endpoint alongside a health check.
package metrics

import (
	"context"
	"net/http"

	"casino/events"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	gamesPlayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_games_played_total",
		Help: "Total number of settled games by game kind.",
	}, []string{"game"})

	gamesWon = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_games_won_total",
		Help: "Total number of games won by players, by game kind.",
	}, []string{"game"})

	coinsWagered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_coins_wagered_total",
		Help: "Total coins wagered on settled games, by game kind.",
	}, []string{"game"})

	coinsPaidOut = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_coins_paid_out_total",
		Help: "Total coins paid out to players, by game kind.",
	}, []string{"game"})
)

// Register subscribes the counters to game settlement events
func Register(bus *events.Bus) {
	bus.Subscribe(events.EventTypeGameSettled, func(ctx context.Context, event events.Event) {
		settled, ok := event.(events.GameSettledEvent)
		if !ok {
			return
		}
		game := string(settled.Game)
		gamesPlayed.WithLabelValues(game).Inc()
		coinsWagered.WithLabelValues(game).Add(float64(settled.Wagered))
		if settled.Won {
			gamesWon.WithLabelValues(game).Inc()
			coinsPaidOut.WithLabelValues(game).Add(float64(settled.Payout))
		}
	})
}

// Serve runs the metrics endpoint until the listener fails. Run it in a
// goroutine; errors are logged, not fatal to the bot.
func Serve(addr string) {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	log.WithField("addr", addr).Info("Metrics server starting")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Errorf("Metrics server stopped: %v", err)
	}
}
