package httpx

import (
	"casefeed/internal/config"
	mdb "casefeed/internal/mongo"
)

var (
	depMC  *mdb.Client
	depCfg config.Config
)

func SetDeps(mc *mdb.Client, cfg config.Config) {
	depMC = mc
	depCfg = cfg
}
