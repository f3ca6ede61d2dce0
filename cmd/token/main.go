// Command token assina um token administrativo para as rotas /v1/cron
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/earnings-estimator-api/internal/config"
	"github.com/vfg2006/earnings-estimator-api/pkg/middleware"
)

func main() {
	name := flag.String("name", "operator", "nome registrado no token")
	ttl := flag.Duration("ttl", 24*time.Hour, "validade do token")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if cfg.Auth.Secret == "" {
		logrus.Fatal("AUTH_SECRET não configurado")
	}

	token, err := middleware.NewAdminToken(*name, cfg.Auth.Secret, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao assinar o token")
	}

	fmt.Fprintln(os.Stdout, token)
}
