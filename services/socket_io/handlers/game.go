package handlers

import (
	redis_models "Parlor/models/redis"
	"Parlor/services/game"
	"Parlor/services/redis"
	socketio_types "Parlor/services/socket_io/types"
	socketio_utils "Parlor/services/socket_io/utils"
	sync "Parlor/services/sync"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// emitRejection sends the named rule violation to the offending client
// only. Rejections never mutate state and are never auto-retried.
func emitRejection(client *socket.Socket, ruleErr *game.RuleError) {
	client.Emit("error", gin.H{
		"type":   "error",
		"error":  ruleErr.Message,
		"reason": string(ruleErr.Reason),
	})
}

// HandleMakeMove processes a move request. Without a destination it
// answers with the legal option set; with one it validates membership
// and applies the move.
func HandleMakeMove(redisClient *redis.RedisClient, client *socket.Socket,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.EventPayload(client, "make_move", args)
		if !ok {
			return
		}
		if !socketio_utils.CheckClaimedID(client, identity, socketio_utils.PayloadString(payload, "player_id")) {
			return
		}

		lock := sio.SessionLock(identity.LobbyID)
		lock.Lock()
		defer lock.Unlock()

		session, err := socketio_utils.LoadSession(redisClient, client, identity.LobbyID)
		if err != nil {
			return
		}

		if ruleErr := game.ValidateAction(session, identity.PlayerID, game.ActionMove); ruleErr != nil {
			log.Printf("[MOVE-REJECT] %s: %v", identity.PlayerID, ruleErr)
			emitRejection(client, ruleErr)
			return
		}

		destination := socketio_utils.PayloadString(payload, "destination")
		if destination == "" {
			// No-destination variant: offer the legal option set.
			player := session.PlayerByID(identity.PlayerID)
			client.Emit("move_options", gin.H{
				"type":        "move_options",
				"player_id":   identity.PlayerID,
				"player_name": player.Name,
				"options":     game.MoveOptions(session, identity.PlayerID),
			})
			return
		}

		if ruleErr := game.ApplyMove(session, identity.PlayerID, destination); ruleErr != nil {
			log.Printf("[MOVE-REJECT] %s -> %s: %v", identity.PlayerID, destination, ruleErr)
			emitRejection(client, ruleErr)
			return
		}

		if err := redisClient.SaveGameSession(session); err != nil {
			log.Printf("[MOVE-ERROR] Error saving session %s: %v", session.LobbyID, err)
			client.Emit("error", gin.H{"error": "Error saving game state"})
			return
		}

		log.Printf("[MOVE-SUCCESS] Player %s moved to %s in lobby %s",
			identity.PlayerID, destination, session.LobbyID)
		socketio_utils.BroadcastGameState(sio, session)
	}
}

// HandleMakeSuggestion validates and opens the suggestion/disproof
// sub-protocol. The prompted candidate receives the matching card names
// privately; everyone else only learns who is being waited on.
func HandleMakeSuggestion(redisClient *redis.RedisClient, client *socket.Socket,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.EventPayload(client, "make_suggestion", args)
		if !ok {
			return
		}
		if !socketio_utils.CheckClaimedID(client, identity, socketio_utils.PayloadString(payload, "player_id")) {
			return
		}

		lock := sio.SessionLock(identity.LobbyID)
		lock.Lock()
		defer lock.Unlock()

		session, err := socketio_utils.LoadSession(redisClient, client, identity.LobbyID)
		if err != nil {
			return
		}

		if ruleErr := game.ValidateAction(session, identity.PlayerID, game.ActionSuggest); ruleErr != nil {
			log.Printf("[SUGGEST-REJECT] %s: %v", identity.PlayerID, ruleErr)
			emitRejection(client, ruleErr)
			return
		}

		outcome, ruleErr := game.BeginSuggestion(session, identity.PlayerID,
			socketio_utils.PayloadString(payload, "suspect"),
			socketio_utils.PayloadString(payload, "weapon"),
			socketio_utils.PayloadString(payload, "room"))
		if ruleErr != nil {
			log.Printf("[SUGGEST-REJECT] %s: %v", identity.PlayerID, ruleErr)
			emitRejection(client, ruleErr)
			return
		}

		if err := redisClient.SaveGameSession(session); err != nil {
			log.Printf("[SUGGEST-ERROR] Error saving session %s: %v", session.LobbyID, err)
			client.Emit("error", gin.H{"error": "Error saving game state"})
			return
		}

		suggesterName := session.PlayerByID(identity.PlayerID).Name
		if outcome.Prompt == nil {
			// Nobody downstream holds a matching card: resolved on the
			// spot, no prompt is ever sent.
			log.Printf("[SUGGEST-NODISPROVE] Lobby %s: no one can disprove %s",
				session.LobbyID, suggesterName)
			socketio_utils.EmitToLobby(sio, session.LobbyID, "suggestion_not_disproved", gin.H{
				"type":      "suggestion_not_disproved",
				"suggester": suggesterName,
			})
		} else {
			log.Printf("[SUGGEST-PROMPT] Lobby %s: prompting %s to disprove %s",
				session.LobbyID, outcome.Prompt.DisproverName, suggesterName)
			// Private prompt with the exact matching card names.
			socketio_utils.EmitPrivate(sio, outcome.Prompt.DisproverID, "disprove_prompt", gin.H{
				"type":           "disprove_prompt",
				"disprover_id":   outcome.Prompt.DisproverID,
				"disprover_name": outcome.Prompt.DisproverName,
				"suggester_name": suggesterName,
				"matching_cards": outcome.Prompt.MatchingCards,
			})
			// Public, non-revealing pending notice for everyone else.
			socketio_utils.EmitToLobby(sio, session.LobbyID, "disproof_pending", gin.H{
				"type":           "disproof_pending",
				"suggester_name": suggesterName,
				"waiting_on":     outcome.Prompt.DisproverName,
			})
		}

		socketio_utils.BroadcastGameState(sio, session)
	}
}

// HandleChooseDisprovingCard processes the prompted candidate's card
// choice and resolves the sub-protocol.
func HandleChooseDisprovingCard(redisClient *redis.RedisClient, client *socket.Socket,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.EventPayload(client, "choose_disproving_card", args)
		if !ok {
			return
		}
		if !socketio_utils.CheckClaimedID(client, identity, socketio_utils.PayloadString(payload, "player_id")) {
			return
		}

		lock := sio.SessionLock(identity.LobbyID)
		lock.Lock()
		defer lock.Unlock()

		session, err := socketio_utils.LoadSession(redisClient, client, identity.LobbyID)
		if err != nil {
			return
		}

		if ruleErr := game.ValidateAction(session, identity.PlayerID, game.ActionDisprove); ruleErr != nil {
			emitRejection(client, ruleErr)
			return
		}

		result, ruleErr := game.ResolveDisproof(session, identity.PlayerID,
			socketio_utils.PayloadString(payload, "card_name"))
		if ruleErr != nil {
			log.Printf("[DISPROVE-REJECT] %s: %v", identity.PlayerID, ruleErr)
			emitRejection(client, ruleErr)
			return
		}

		if err := redisClient.SaveGameSession(session); err != nil {
			log.Printf("[DISPROVE-ERROR] Error saving session %s: %v", session.LobbyID, err)
			client.Emit("error", gin.H{"error": "Error saving game state"})
			return
		}

		log.Printf("[DISPROVE-SUCCESS] Lobby %s: %s disproved %s",
			session.LobbyID, result.DisproverName, result.SuggesterName)

		// The revealed card goes to the suggester alone.
		socketio_utils.EmitPrivate(sio, result.SuggesterID, "disproof_result", gin.H{
			"type":           "disproof_result",
			"suggester_id":   result.SuggesterID,
			"card":           result.Card,
			"disprover_name": result.DisproverName,
		})
		// The public notice names both parties but never the card.
		socketio_utils.EmitToLobby(sio, session.LobbyID, "suggestion_disproved", gin.H{
			"type":           "suggestion_disproved",
			"suggester_name": result.SuggesterName,
			"disprover_name": result.DisproverName,
		})

		socketio_utils.BroadcastGameState(sio, session)
	}
}

// HandleMakeAccusation resolves an accusation synchronously against the
// hidden solution. No disprove phase is involved.
func HandleMakeAccusation(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.EventPayload(client, "make_accusation", args)
		if !ok {
			return
		}
		if !socketio_utils.CheckClaimedID(client, identity, socketio_utils.PayloadString(payload, "player_id")) {
			return
		}

		lock := sio.SessionLock(identity.LobbyID)
		lock.Lock()
		defer lock.Unlock()

		session, err := socketio_utils.LoadSession(redisClient, client, identity.LobbyID)
		if err != nil {
			return
		}

		if ruleErr := game.ValidateAction(session, identity.PlayerID, game.ActionAccuse); ruleErr != nil {
			log.Printf("[ACCUSE-REJECT] %s: %v", identity.PlayerID, ruleErr)
			emitRejection(client, ruleErr)
			return
		}

		result, ruleErr := game.ResolveAccusation(session, identity.PlayerID,
			socketio_utils.PayloadString(payload, "suspect"),
			socketio_utils.PayloadString(payload, "weapon"),
			socketio_utils.PayloadString(payload, "room"))
		if ruleErr != nil {
			emitRejection(client, ruleErr)
			return
		}

		if err := redisClient.SaveGameSession(session); err != nil {
			log.Printf("[ACCUSE-ERROR] Error saving session %s: %v", session.LobbyID, err)
			client.Emit("error", gin.H{"error": "Error saving game state"})
			return
		}

		if result.Correct {
			log.Printf("[ACCUSE-WIN] Lobby %s: %s solved the case", session.LobbyID, result.AccuserName)
			socketio_utils.EmitToLobby(sio, session.LobbyID, "game_over", gin.H{
				"type":   "game_over",
				"winner": result.AccuserName,
				"solution": gin.H{
					"suspect": result.Solution.Suspect,
					"weapon":  result.Solution.Weapon,
					"room":    result.Solution.Room,
				},
			})

			// Persist the final result; the live session stays in Redis
			// until the lobby is reset so late resyncs still work.
			if err := sync.NewSyncManager(redisClient, db).SyncFinalResult(session); err != nil {
				log.Printf("[ACCUSE-ERROR] Error syncing final result: %v", err)
			}
		} else {
			// The true solution is never revealed on a wrong guess.
			log.Printf("[ACCUSE-ELIMINATED] Lobby %s: %s accused wrongly", session.LobbyID, result.AccuserName)
			socketio_utils.EmitToLobby(sio, session.LobbyID, "player_eliminated", gin.H{
				"type":        "player_eliminated",
				"player_name": result.AccuserName,
			})
		}

		socketio_utils.BroadcastGameState(sio, session)
	}
}

// HandleEndTurn advances the turn marker once no disproof is
// outstanding.
func HandleEndTurn(redisClient *redis.RedisClient, client *socket.Socket,
	identity *redis_models.PlayerIdentity, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.EventPayload(client, "end_turn", args)
		if !ok {
			return
		}
		if !socketio_utils.CheckClaimedID(client, identity, socketio_utils.PayloadString(payload, "player_id")) {
			return
		}

		lock := sio.SessionLock(identity.LobbyID)
		lock.Lock()
		defer lock.Unlock()

		session, err := socketio_utils.LoadSession(redisClient, client, identity.LobbyID)
		if err != nil {
			return
		}

		if ruleErr := game.ValidateAction(session, identity.PlayerID, game.ActionEndTurn); ruleErr != nil {
			log.Printf("[TURN-REJECT] %s: %v", identity.PlayerID, ruleErr)
			emitRejection(client, ruleErr)
			return
		}

		game.AdvanceTurn(session)

		if err := redisClient.SaveGameSession(session); err != nil {
			log.Printf("[TURN-ERROR] Error saving session %s: %v", session.LobbyID, err)
			client.Emit("error", gin.H{"error": "Error saving game state"})
			return
		}

		current := session.CurrentPlayer()
		log.Printf("[TURN-ADVANCE] Lobby %s: turn passed to %s", session.LobbyID, current.Name)
		socketio_utils.BroadcastGameState(sio, session)
	}
}
