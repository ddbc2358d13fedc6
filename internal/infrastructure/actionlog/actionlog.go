// Package actionlog shell'in tuttuğu sınırlı boyutlu eylem günlüğüdür.
// Core buraya hiç dokunmaz; orchestrator özet döner, kaydı handler yapar.
package actionlog

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

const (
	logKey   = "batcher:actions"
	capacity = 50 // son 50 kayıt tutulur
)

type ActionLog struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *ActionLog {
	return &ActionLog{rdb: rdb}
}

// Record mesajı listenin başına ekler ve listeyi kapasiteye kırpar.
// Günlük best-effort'tur; redis hatası batch sonucunu etkilemez.
func (l *ActionLog) Record(ctx context.Context, msg string) {
	pipe := l.rdb.TxPipeline()
	pipe.LPush(ctx, logKey, msg)
	pipe.LTrim(ctx, logKey, 0, capacity-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Action log yazılamadı: %v", err)
	}
}

// Recent en yeni kayıttan eskiye doğru günlüğü döner.
func (l *ActionLog) Recent(ctx context.Context) ([]string, error) {
	return l.rdb.LRange(ctx, logKey, 0, capacity-1).Result()
}
