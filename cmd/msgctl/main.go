package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/simplemsg-hq/simplemsg-go/internal/config"
	"github.com/simplemsg-hq/simplemsg-go/pkg/messaging"
)

const usage = `usage: msgctl <resource> <action> [flags]

resources and actions:
  contacts create|get|list|update|delete
  messages send|get|list

Configuration (api_base_url, api_key) is read from configs/.env and the
environment.`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "msgctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("missing resource or action")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := messaging.NewClient(cfg.APIBaseURL, cfg.APIKey, messaging.WithTimeout(cfg.APITimeout))
	ctx := context.Background()

	resource, action := args[0], args[1]
	rest := args[2:]

	switch resource {
	case "contacts":
		return runContacts(ctx, client, action, rest)
	case "messages":
		return runMessages(ctx, client, action, rest)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
}

func runContacts(ctx context.Context, client *messaging.Client, action string, args []string) error {
	fs := flag.NewFlagSet("contacts "+action, flag.ExitOnError)
	id := fs.String("id", "", "contact id")
	name := fs.String("name", "", "contact name")
	phone := fs.String("phone", "", "contact phone number")
	pageIndex := fs.Int("page", 0, "page index (zero based)")
	max := fs.Int("max", 10, "contacts per page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch action {
	case "create":
		contact, err := client.CreateContact(ctx, *name, *phone)
		if err != nil {
			return err
		}
		return printJSON(contact)
	case "get":
		contact, err := client.GetContact(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(contact)
	case "list":
		page, err := client.ListContacts(ctx, *pageIndex, *max)
		if err != nil {
			return err
		}
		return printJSON(page)
	case "update":
		var params messaging.UpdateContactParams
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				params.Name = messaging.String(*name)
			case "phone":
				params.Phone = messaging.String(*phone)
			}
		})
		contact, err := client.UpdateContact(ctx, *id, params)
		if err != nil {
			return err
		}
		return printJSON(contact)
	case "delete":
		ack, err := client.DeleteContact(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(ack)
	default:
		return fmt.Errorf("unknown contacts action %q", action)
	}
}

func runMessages(ctx context.Context, client *messaging.Client, action string, args []string) error {
	fs := flag.NewFlagSet("messages "+action, flag.ExitOnError)
	id := fs.String("id", "", "message id")
	from := fs.String("from", "", "sender phone number")
	to := fs.String("to", "", "recipient contact id")
	content := fs.String("content", "", "message content")
	page := fs.Int("page", 1, "page number (one based)")
	limit := fs.Int("limit", 100, "messages per page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch action {
	case "send":
		msg, err := client.SendMessage(ctx, *from, *to, *content)
		if err != nil {
			return err
		}
		return printJSON(msg)
	case "get":
		msg, err := client.GetMessage(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(msg)
	case "list":
		res, err := client.ListMessages(ctx, *page, *limit)
		if err != nil {
			return err
		}
		return printJSON(res)
	default:
		return fmt.Errorf("unknown messages action %q", action)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
