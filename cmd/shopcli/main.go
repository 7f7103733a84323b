// Command shopcli is a smoke harness for the client library: it settles the
// stored session, optionally logs in, and prints the resulting state. The
// library itself is embedded in the mobile shell; this binary exists for
// backend debugging.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/myshop/go-client/credentials"
	"github.com/myshop/go-client/internal/config"
	"github.com/myshop/go-client/internal/utils"
	"github.com/myshop/go-client/session"
	"github.com/myshop/go-client/signin"
	"github.com/myshop/go-client/transport"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("shopcli failed")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	store, err := credentials.NewFileStore(c.GetCredentialsPath())
	if err != nil {
		return errors.Wrap(err, "[run] NewFileStore")
	}
	creds := credentials.New(store)

	pipeline, err := transport.NewPipeline(c.GetBaseURL(), creds)
	if err != nil {
		return errors.Wrap(err, "[run] NewPipeline")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	options := []session.ManagerOption{
		session.WithStateListener(func(s session.State) {
			log.Info().Str("state", string(s)).Msg("Session state changed")
		}),
	}
	if clientID := c.GetGoogleClientID(); clientID != "" {
		google, err := signin.NewGoogle(ctx, clientID, c.GetGoogleClientSecret(), c.GetGoogleRedirectURL())
		if err != nil {
			return errors.Wrap(err, "[run] NewGoogle")
		}
		options = append(options, session.WithSignInProvider(google))
	}

	manager, err := session.NewManager(creds, pipeline, options...)
	if err != nil {
		return errors.Wrap(err, "[run] NewManager")
	}

	manager.VerifyAuthentication(ctx)
	log.Info().Str("device_id", manager.DeviceID()).Msg("Session settled")

	if len(os.Args) == 4 && os.Args[1] == "login" {
		if err := manager.Login(ctx, os.Args[2], os.Args[3]); err != nil {
			return errors.Wrap(err, "[run] Login")
		}
	}

	if user := manager.CurrentUser(); user != nil {
		log.Info().
			Str("email", user.Email).
			Str("name", user.FirstName+" "+user.LastName).
			Str("phone", utils.Value(user.PhoneNumber)).
			Msg("Signed in")
	} else {
		log.Info().Msg("Not signed in")
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
