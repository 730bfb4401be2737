package ui

import (
	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
)

// Text keys for localization
const (
	KeyAppTitle              = "app_title"
	KeyFile                  = "file"
	KeySettings              = "settings"
	KeyLanguage              = "language"
	KeyCopyItems             = "copy_items"
	KeyAddItem               = "add_item"
	KeyEditItem              = "edit_item"
	KeyDeleteExpired         = "delete_expired"
	KeyDelete                = "delete"
	KeyName                  = "name"
	KeyExpiration            = "expiration"
	KeyExpirationHint        = "expiration_hint"
	KeyNameHint              = "name_hint"
	KeySave                  = "save"
	KeyCancel                = "cancel"
	KeyBrowse                = "browse"
	KeyInfo                  = "info"
	KeyRowFormat             = "row_format"
	KeyRemainingFormat       = "remaining_format"
	KeyNever                 = "never"
	KeyExpired               = "expired"
	KeyUnknown               = "unknown"
	KeyConfirmDelete         = "confirm_delete"
	KeyConfirmDeleteExpired  = "confirm_delete_expired"
	KeyDeletedExpired        = "deleted_expired"
	KeyNothingExpired        = "nothing_expired"
	KeyCopied                = "copied"
	KeyNothingToCopy         = "nothing_to_copy"
	KeyDataDirectory         = "data_directory"
	KeyRefreshInterval       = "refresh_interval"
	KeySettingsSaved         = "settings_saved"
	KeyRestartRequired       = "restart_required"
	KeyErrEmptyName          = "err_empty_name"
	KeyErrMissingExpiration  = "err_missing_expiration"
	KeyErrInvalidFormat      = "err_invalid_format"
	KeyErrNotFound           = "err_not_found"
	KeyErrSaveFailed         = "err_save_failed"
	KeyErrRefreshNotANumber  = "err_refresh_not_a_number"
	KeyErrUnexpected         = "err_unexpected"
	KeyEmptyList             = "empty_list"
	KeySystemLanguageDefault = "system_language"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS language when
// it is one of the translations and English otherwise.
func (l *Localization) SetLanguage(code string) {
	if code == LangSystem {
		code = lang.SystemLocale().LanguageString()
		if _, exists := l.texts[code]; !exists {
			code = LangEnglish
		}
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:              "Expiration Tracker",
		KeyFile:                  "File",
		KeySettings:              "Settings",
		KeyLanguage:              "Language",
		KeyCopyItems:             "Copy Items",
		KeyAddItem:               "Add Item",
		KeyEditItem:              "Edit Item",
		KeyDeleteExpired:         "Delete Expired",
		KeyDelete:                "Delete",
		KeyName:                  "Name",
		KeyExpiration:            "Expiration",
		KeyExpirationHint:        "7d, 12h, 2w, 1m, 1y, inf or YYYY-MM-DD HH:MM:SS",
		KeyNameHint:              "Milk",
		KeySave:                  "Save",
		KeyCancel:                "Cancel",
		KeyBrowse:                "Browse",
		KeyInfo:                  "Information",
		KeyRowFormat:             "%s - Expires in %s",
		KeyRemainingFormat:       "%dd %dh",
		KeyNever:                 "Never",
		KeyExpired:               "Expired",
		KeyUnknown:               "Unknown",
		KeyConfirmDelete:         "Delete %q?",
		KeyConfirmDeleteExpired:  "Delete all expired items?",
		KeyDeletedExpired:        "Deleted %d expired item(s)",
		KeyNothingExpired:        "There are no expired items",
		KeyCopied:                "Item names copied to clipboard",
		KeyNothingToCopy:         "There are no items to copy",
		KeyDataDirectory:         "Data Directory",
		KeyRefreshInterval:       "Refresh Interval (seconds)",
		KeySettingsSaved:         "Settings saved successfully!",
		KeyRestartRequired:       "The new data directory is used after a restart.",
		KeyErrEmptyName:          "Please enter a name.",
		KeyErrMissingExpiration:  "There is no default shelf life for this item. Please enter an expiration.",
		KeyErrInvalidFormat:      "Invalid expiration. Use a number with d, h, w, m or y, inf, or YYYY-MM-DD HH:MM:SS.",
		KeyErrNotFound:           "This item no longer exists.",
		KeyErrSaveFailed:         "Could not save items to disk. Your change was not applied.",
		KeyErrRefreshNotANumber:  "Refresh interval must be a whole number of seconds.",
		KeyErrUnexpected:         "Unexpected error",
		KeyEmptyList:             "No items yet. Use Add Item to start tracking.",
		KeySystemLanguageDefault: "System Default",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:              "Сроки годности",
		KeyFile:                  "Файл",
		KeySettings:              "Настройки",
		KeyLanguage:              "Язык",
		KeyCopyItems:             "Копировать",
		KeyAddItem:               "Добавить",
		KeyEditItem:              "Изменить продукт",
		KeyDeleteExpired:         "Удалить просроченные",
		KeyDelete:                "Удалить",
		KeyName:                  "Название",
		KeyExpiration:            "Срок",
		KeyExpirationHint:        "7d, 12h, 2w, 1m, 1y, inf или ГГГГ-ММ-ДД ЧЧ:ММ:СС",
		KeyNameHint:              "Молоко",
		KeySave:                  "Сохранить",
		KeyCancel:                "Отмена",
		KeyBrowse:                "Обзор",
		KeyInfo:                  "Информация",
		KeyRowFormat:             "%s - истекает через %s",
		KeyRemainingFormat:       "%dд %dч",
		KeyNever:                 "Никогда",
		KeyExpired:               "Просрочено",
		KeyUnknown:               "Неизвестно",
		KeyConfirmDelete:         "Удалить %q?",
		KeyConfirmDeleteExpired:  "Удалить все просроченные продукты?",
		KeyDeletedExpired:        "Удалено просроченных: %d",
		KeyNothingExpired:        "Просроченных продуктов нет",
		KeyCopied:                "Названия скопированы в буфер обмена",
		KeyNothingToCopy:         "Нечего копировать",
		KeyDataDirectory:         "Папка данных",
		KeyRefreshInterval:       "Интервал обновления (секунды)",
		KeySettingsSaved:         "Настройки успешно сохранены!",
		KeyRestartRequired:       "Новая папка данных будет использована после перезапуска.",
		KeyErrEmptyName:          "Введите название.",
		KeyErrMissingExpiration:  "Для этого продукта нет срока по умолчанию. Введите срок.",
		KeyErrInvalidFormat:      "Неверный срок. Используйте число с d, h, w, m или y, inf или ГГГГ-ММ-ДД ЧЧ:ММ:СС.",
		KeyErrNotFound:           "Этот продукт больше не существует.",
		KeyErrSaveFailed:         "Не удалось сохранить данные на диск. Изменение не применено.",
		KeyErrRefreshNotANumber:  "Интервал обновления должен быть целым числом секунд.",
		KeyErrUnexpected:         "Непредвиденная ошибка",
		KeyEmptyList:             "Пока пусто. Нажмите «Добавить».",
		KeySystemLanguageDefault: "Системный",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:              "Controle de Validade",
		KeyFile:                  "Arquivo",
		KeySettings:              "Configurações",
		KeyLanguage:              "Idioma",
		KeyCopyItems:             "Copiar Itens",
		KeyAddItem:               "Adicionar Item",
		KeyEditItem:              "Editar Item",
		KeyDeleteExpired:         "Excluir Vencidos",
		KeyDelete:                "Excluir",
		KeyName:                  "Nome",
		KeyExpiration:            "Validade",
		KeyExpirationHint:        "7d, 12h, 2w, 1m, 1y, inf ou AAAA-MM-DD HH:MM:SS",
		KeyNameHint:              "Leite",
		KeySave:                  "Salvar",
		KeyCancel:                "Cancelar",
		KeyBrowse:                "Navegar",
		KeyInfo:                  "Informação",
		KeyRowFormat:             "%s - Vence em %s",
		KeyRemainingFormat:       "%dd %dh",
		KeyNever:                 "Nunca",
		KeyExpired:               "Vencido",
		KeyUnknown:               "Desconhecido",
		KeyConfirmDelete:         "Excluir %q?",
		KeyConfirmDeleteExpired:  "Excluir todos os itens vencidos?",
		KeyDeletedExpired:        "%d item(ns) vencido(s) excluído(s)",
		KeyNothingExpired:        "Não há itens vencidos",
		KeyCopied:                "Nomes copiados para a área de transferência",
		KeyNothingToCopy:         "Não há itens para copiar",
		KeyDataDirectory:         "Diretório de Dados",
		KeyRefreshInterval:       "Intervalo de Atualização (segundos)",
		KeySettingsSaved:         "Configurações salvas com sucesso!",
		KeyRestartRequired:       "O novo diretório de dados será usado após reiniciar.",
		KeyErrEmptyName:          "Digite um nome.",
		KeyErrMissingExpiration:  "Não há validade padrão para este item. Digite uma validade.",
		KeyErrInvalidFormat:      "Validade inválida. Use um número com d, h, w, m ou y, inf, ou AAAA-MM-DD HH:MM:SS.",
		KeyErrNotFound:           "Este item não existe mais.",
		KeyErrSaveFailed:         "Não foi possível salvar os itens no disco. A alteração não foi aplicada.",
		KeyErrRefreshNotANumber:  "O intervalo deve ser um número inteiro de segundos.",
		KeyErrUnexpected:         "Erro inesperado",
		KeyEmptyList:             "Nenhum item ainda. Use Adicionar Item para começar.",
		KeySystemLanguageDefault: "Padrão do Sistema",
	}
}
