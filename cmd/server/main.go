package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/changhyeonkim/splearn/internal/bootstrap"
	"github.com/changhyeonkim/splearn/internal/config"
	"github.com/changhyeonkim/splearn/internal/member"
	"github.com/changhyeonkim/splearn/internal/router"
	"github.com/changhyeonkim/splearn/internal/shared/database"
	"github.com/changhyeonkim/splearn/internal/shared/logger"
	"github.com/changhyeonkim/splearn/internal/shared/validator"
)

func main() {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()

	logger.Setup(*env)
	slog.Info("서버 초기화 시작", "env", *env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *env); err != nil {
		slog.Error("서버 실행 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", *env)
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}
	slog.Info("환경 변수 로드 성공", "service", cfg.App.Name)

	db, err := database.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	srv, err := setupServer(cfg, db)
	if err != nil {
		return fmt.Errorf("서버 설정 실패: %w", err)
	}

	return serve(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer registers validators and routes on a bootstrapped engine
func setupServer(cfg *config.Config, db *database.DB) (*bootstrap.Server, error) {
	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}
	if err := member.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("회원 Validator 등록 실패: %w", err)
	}

	engine := bootstrap.NewBootstrap(cfg).SetupEngine()
	if err := router.Setup(engine, cfg, db); err != nil {
		return nil, fmt.Errorf("라우트 설정 실패: %w", err)
	}

	slog.Info("서버 설정 완료", "env", cfg.App.Env)
	return bootstrap.New(cfg, engine), nil
}

func serve(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case <-ctx.Done():
		slog.Info("종료 신호 수신됨", "addr", srv.Addr())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
		defer cancel()

		slog.Info("서버 종료 중...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return <-serverErrors
	}
}
