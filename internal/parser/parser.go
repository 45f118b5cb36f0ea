package parser

import (
	"fmt"
	"io"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/config"
	"github.com/lgbarn/mindflayer-go/internal/errors"
)

// Parser parses move-list input into Game structures.
type Parser struct {
	lexer  *Lexer
	cfg    *config.Config
	source string
	count  int
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		lexer: NewLexer(r),
		cfg:   cfg,
	}
}

// SetSource names the input for games and error messages.
func (p *Parser) SetSource(name string) {
	p.source = name
}

// ParseGame parses a single game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*chess.Game, error) {
	var game *chess.Game
	for {
		tok := p.lexer.NextToken()
		switch tok.Type {
		case EOFToken:
			return game, nil

		case EOLToken:
			if game != nil {
				return game, nil
			}

		case MoveNumber:
			game = p.startGame(game, tok)

		case MoveToken:
			game = p.startGame(game, tok)
			if game.Result != "" {
				fmt.Fprintf(p.cfg.LogFile, "%s:%d: move %s after result %s ignored.\n",
					p.sourceName(), tok.Line, tok.Text, game.Result)
				continue
			}
			game.AppendMove(tok.Text)

		case ResultToken:
			game = p.startGame(game, tok)
			game.Result = tok.Text

		default:
			return nil, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				File:     p.source,
				Line:     int(tok.Line),
				Column:   int(tok.Column),
				Expected: "coordinate move",
				Got:      fmt.Sprintf("%q", tok.Text),
			}
		}
	}
}

// startGame returns game, creating it at tok when this is the first token
// of a new game.
func (p *Parser) startGame(game *chess.Game, tok *Token) *chess.Game {
	if game != nil {
		return game
	}
	p.count++
	game = chess.NewGame(p.count)
	game.Line = tok.Line
	game.Source = p.source
	return game
}

func (p *Parser) sourceName() string {
	if p.source == "" {
		return "<input>"
	}
	return p.source
}

// ParseAllGames parses all games from the input. On a parse error the games
// read so far are returned with the error.
func (p *Parser) ParseAllGames() ([]*chess.Game, error) {
	games := make([]*chess.Game, 0, 100)

	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			break
		}
		games = append(games, game)
	}

	return games, nil
}
