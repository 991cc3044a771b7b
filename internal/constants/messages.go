package constants

// User-facing text. Markdown is rendered by the chat transport.

const MsgConfigureFirst = "🔒 *Credentials Needed*\n\n" +
	"It looks like your provider credentials are not set or are invalid. " +
	"Please use the /configure command first:\n" +
	"`/configure <YOUR_ACCOUNT_SID> <YOUR_AUTH_TOKEN>`"

const MsgAdminOnly = "⛔ Sorry, this command is for admins only."

const MsgInvalidSID = "⚠️ *Invalid Account SID Format*\n\n" +
	"Your Account SID should start with `AC` and be 34 characters long."

const MsgInvalidPhoneNumber = "⚠️ *Invalid Phone Number Format*\n\n" +
	"The phone number should start with `+` (e.g., `+1234567890`)."

const MsgConfigured = "✅ Credentials configured and validated successfully! You're all set. ✨"

const MsgConfigureFailed = "❌ *Authentication Failed*\n\n" +
	"Failed to validate your credentials. Please double-check your Account SID and Auth Token and try again."

const MsgLimitOutOfRange = "⚠️ Limit must be between 1 and 20."

const MsgLimitNotANumber = "⚠️ Invalid limit. It must be a number."

const UsageConfigure = "⚠️ *Incorrect Usage*\n\n" +
	"Please provide both Account SID and Auth Token.\n" +
	"Usage: `/configure <ACCOUNT_SID> <AUTH_TOKEN>`\n" +
	"Example: `/configure ACxxxxxxxxxxxxxxx your_auth_token_here`"

const UsageSearch = "❓*How to Search for Numbers*\n\n" +
	"Usage: `/search_numbers <country_code> [area_code_or_none] [pattern_or_none] [zip_code_or_none]`\n" +
	"Example: `/search_numbers US 415 SHOP 94107`\n" +
	"_Type /help for more examples and details._"

const UsageBuy = "❓*How to Buy a Number*\n\n" +
	"Usage: `/buy_number <phone_number_to_buy>`\n" +
	"Example: `/buy_number +1234567890`"

const UsageRelease = "❓*How to Release a Number*\n\n" +
	"Usage: `/release_number <phone_number_to_release>`\n" +
	"Example: `/release_number +1234567890`"

const UsageCheckSMS = "❓*How to Check SMS*\n\n" +
	"Usage: `/check_sms <your_number> [limit]`\n" +
	"Example: `/check_sms +1234567890 5`"

const MsgHelp = "📖 *Available Commands & Features:*\n\n" +
	"`/start` - Welcome message & main menu.\n" +
	"`/help` - Show this help message.\n" +
	"`/configure <SID> <TOKEN>` - Set your provider credentials.\n" +
	"    _Example: `/configure ACxxxx your_token_here`_\n" +
	"`/search_numbers <country> [area_code] [pattern] [zip]` - Search numbers.\n" +
	"    _Country (e.g., US, GB, CA). Use 'none' or '_' to skip optional parts._\n" +
	"    _Example: `/search_numbers US 415 SHOP 94107`_\n" +
	"    _Example: `/search_numbers US none none 94107`_\n" +
	"`/buy_number <+phonenumber>` - Buy an available number.\n" +
	"    _Example: `/buy_number +1234567890`_\n" +
	"`/my_numbers` - List your owned numbers.\n" +
	"`/release_number <+phonenumber>` - Release an owned number.\n" +
	"    _Example: `/release_number +1234567890`_\n" +
	"`/check_sms <+phonenumber> [limit]` - Check recent SMS.\n" +
	"    _Example: `/check_sms +1234567890 5`_\n" +
	"`/ownerinfo` - Display bot owner/developer info.\n"

const MsgHelpAdminExtra = "`/admin_stats` - (Admin Only) Basic bot stats.\n"

const MsgSearchGuide = "*🔍 How to Search for Numbers:*\n\n" +
	"Use the command:\n" +
	"`/search_numbers <country_code> [area_code_or_none] [pattern_or_none] [zip_code_or_none]`\n\n" +
	"*Examples:*\n" +
	"- `/search_numbers US 415 SHOP 94107`\n" +
	"- `/search_numbers US none none 12345` (search by zip only)\n\n" +
	"_Use 'none' or '_' to skip optional parts. Type /help for more details._"

const MsgConfigureGuide = "⚙️ *How to Configure Credentials:*\n\n" +
	"Use the command with your Account SID and Auth Token:\n" +
	"`/configure <YOUR_ACCOUNT_SID> <YOUR_AUTH_TOKEN>`\n\n" +
	"_You can find these on your provider console dashboard._"

const MsgHelpOverview = "ℹ️ For a full list of commands and their usage, please type `/help`."
