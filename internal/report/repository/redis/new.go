package redis

import (
	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
	pkgRedis "report-srv/pkg/redis"
)

const (
	artifactKeyPrefix   = "report:artifact:"
	lastParamsKeyPrefix = "report:last_params:"
)

type implRepository struct {
	client pkgRedis.IRedis
	l      log.Logger
}

func New(client pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
