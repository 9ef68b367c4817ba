package ws

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RoomsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kittens_rooms_active",
			Help: "Number of rooms currently registered",
		},
	)
	GamesStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kittens_games_started_total",
			Help: "Total matches started",
		},
	)
	GamesFinished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kittens_games_finished_total",
			Help: "Total matches finished with a winner",
		},
	)
	MessagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kittens_ws_messages_total",
			Help: "Inbound websocket messages by type",
		},
		[]string{"type"},
	)
	NopesPlayed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kittens_nopes_played_total",
			Help: "Total suppression votes cast",
		},
	)
	Explosions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kittens_explosions_total",
			Help: "Total exploding kittens drawn",
		},
	)
)

func init() {
	prometheus.MustRegister(RoomsActive, GamesStarted, GamesFinished, MessagesReceived, NopesPlayed, Explosions)
}
