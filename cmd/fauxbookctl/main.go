// fauxbookctl es un CLI de operaciones contra la API HTTP del backend.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	Token     string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	var (
		baseURL = envOr("FAUXBOOK_URL", "http://localhost:8080")
		token   = envOr("FAUXBOOK_TOKEN", "")
		out     = envOr("FAUXBOOK_OUT", "text")
	)

	root := &cobra.Command{
		Use:   "fauxbookctl",
		Short: "CLI de operaciones para Faux Facebook",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base de la API (env FAUXBOOK_URL)")
	root.PersistentFlags().StringVar(&token, "token", token, "Access token Bearer (env FAUXBOOK_TOKEN)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{HTTP: &http.Client{Timeout: 30 * time.Second}}
	syncClient := func() {
		cl.BaseURL = baseURL
		cl.Token = token
		cl.OutFormat = out
	}

	// ─── health ───
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Estado del servicio (store + cache)",
		RunE: func(cmd *cobra.Command, args []string) error {
			syncClient()
			status, body, err := cl.do(http.MethodGet, "/readyz", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	// ─── login ───
	var email, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login y obtención de tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			syncClient()
			payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
			status, body, err := cl.do(http.MethodPost, "/login", payload)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&email, "email", "", "Email de la cuenta")
	loginCmd.Flags().StringVar(&password, "password", "", "Password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	// ─── signup ───
	var first, last string
	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Alta de cuenta nueva",
		RunE: func(cmd *cobra.Command, args []string) error {
			syncClient()
			payload, _ := json.Marshal(map[string]string{
				"firstName": first,
				"lastName":  last,
				"email":     email,
				"password":  password,
			})
			status, body, err := cl.do(http.MethodPost, "/signup", payload)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	signupCmd.Flags().StringVar(&first, "first-name", "", "Nombre")
	signupCmd.Flags().StringVar(&last, "last-name", "", "Apellido")
	signupCmd.Flags().StringVar(&email, "email", "", "Email")
	signupCmd.Flags().StringVar(&password, "password", "", "Password")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")

	// ─── posts ───
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "Listar el feed completo",
		RunE: func(cmd *cobra.Command, args []string) error {
			syncClient()
			status, body, err := cl.do(http.MethodGet, "/posts", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	// ─── logout ───
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Revocar la sesión activa",
		RunE: func(cmd *cobra.Command, args []string) error {
			syncClient()
			status, body, err := cl.do(http.MethodPost, "/logout", nil)
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	root.AddCommand(healthCmd, loginCmd, signupCmd, postsCmd, logoutCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
