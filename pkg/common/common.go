package common

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/argon2"
)

type Msg struct {
	Message string `json:"message"`
}

func WriteMsg(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	WriteRespJSON(w, Msg{msg})
}

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func RandStringRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}
	return string(b)
}

const saltLen = 8

// HashPass returns the salt followed by the argon2id key of the password.
func HashPass(plainPassword, salt string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), []byte(salt), 1, 64*1024, 4, 32)
	res := []byte(salt)
	return append(res, hashedPass...)
}

func NewPassHash(plainPassword string) []byte {
	return HashPass(plainPassword, RandStringRunes(saltLen))
}

func CheckPass(plainPassword string, hashed []byte) bool {
	if len(hashed) <= saltLen {
		return false
	}
	salt := string(hashed[:saltLen])
	return subtle.ConstantTimeCompare(HashPass(plainPassword, salt), hashed) == 1
}

func ParseReqBody(body io.Reader, ptr interface{}) error {
	err := json.NewDecoder(body).Decode(ptr)
	if err != nil {
		return err
	}
	return nil
}

func WriteRespJSON(w http.ResponseWriter, data interface{}) {
	resp, err := json.Marshal(data)
	if err != nil {
		log.Println("common: JSON marshaling failed", err)
		WriteMsg(w, "response failed", http.StatusInternalServerError)
		return
	}

	_, err = w.Write(resp)
	if err != nil {
		log.Println("common: failed writing response", err)
	}
}

// WriteJSON sets the status code and writes data as the JSON body.
func WriteJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	WriteRespJSON(w, data)
}

// PathId reads a numeric mux variable.
func PathId(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, Validation("invalid %s: %q", name, raw)
	}
	return id, nil
}
