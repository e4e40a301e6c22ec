package email

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
)

type Client struct {
	noReplyAddress string
	adminAddress   string
	siteName       string
	client         http.Client
	apiKey         string
	baseURL        string
}

type Address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type EmailMessage struct {
	Sender      Address   `json:"sender"`
	To          []Address `json:"to"`
	Subject     string    `json:"subject"`
	ReplyTo     Address   `json:"replyTo,omitempty"`
	TextContent string    `json:"textContent,omitempty"`
	HtmlContent string    `json:"htmlContent,omitempty"`
}

func NewClient(apiKey, noReplyAddress, adminAddress, siteName string) (Client, error) {
	return Client{
		client:         *http.DefaultClient,
		apiKey:         apiKey,
		noReplyAddress: noReplyAddress,
		adminAddress:   adminAddress,
		siteName:       siteName,
		baseURL:        "https://api.sendinblue.com"}, nil
}

// Enabled reports whether the client was configured with an API key.
// Transactional email is best-effort and skipped entirely when disabled.
func (e Client) Enabled() bool {
	return e.apiKey != ""
}

func (e Client) DefaultSenderName() string {
	return e.siteName
}

func (e Client) NoReplySenderAddress() string {
	return e.noReplyAddress
}

func (e Client) DefaultAdminAddress() string {
	return e.adminAddress
}

func (e Client) SendTextEmail(from, to Address, subject, text string) error {
	msg := EmailMessage{
		Sender:      from,
		Subject:     subject,
		To:          []Address{to},
		TextContent: text,
	}
	reqData, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, e.baseURL+"/v3/smtp/email", bytes.NewReader(reqData))
	if err != nil {
		return err
	}
	req.Header.Add("api-key", e.apiKey)
	req.Header.Add("content-type", "application/json")
	res, err := e.client.Do(req)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		errBody, err := ioutil.ReadAll(res.Body)
		if err != nil {
			errBody = []byte(`unable to read body`)
		}
		return errors.New(fmt.Sprintf("got status code %d when sending email: err %s", res.StatusCode, string(errBody)))
	}
	return nil
}
