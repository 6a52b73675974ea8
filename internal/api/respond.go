package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// MIMEMsgpack is the media type clients send in Accept to receive MessagePack.
const MIMEMsgpack = "application/msgpack"

// respond writes v as MessagePack when the client asks for it, JSON otherwise.
func respond(c echo.Context, status int, v interface{}) error {
	if !acceptsMsgpack(c.Request().Header.Get(echo.HeaderAccept)) {
		return c.JSON(status, v)
	}

	data, err := msgpack.Marshal(v)
	if err != nil {
		return NewInternalError("failed to encode msgpack", err)
	}
	return c.Blob(status, MIMEMsgpack, data)
}

func acceptsMsgpack(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if mediaType == MIMEMsgpack || mediaType == "application/x-msgpack" {
			return true
		}
	}
	return false
}
